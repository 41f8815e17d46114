package response

import (
	"liblend/internal/usecase/queries"
)

type RecommendationResponse struct {
	Book   *BookResponse `json:"book"`
	Score  float64       `json:"score"`
	Reason string        `json:"reason"`
}

type RecommendationListResponse struct {
	Recommendations []*RecommendationResponse `json:"recommendations"`
	Count           int                       `json:"count"`
	AIPowered       bool                      `json:"ai_powered"`
	Message         string                    `json:"message,omitempty"`
}

func FromRecommendations(recs []*queries.Recommendation, aiPowered bool, message string) *RecommendationListResponse {
	out := make([]*RecommendationResponse, len(recs))
	for i, rec := range recs {
		out[i] = &RecommendationResponse{
			Book:   FromBookView(rec.Book),
			Score:  rec.Score,
			Reason: rec.Reason,
		}
	}
	return &RecommendationListResponse{
		Recommendations: out,
		Count:           len(out),
		AIPowered:       aiPowered,
		Message:         message,
	}
}
