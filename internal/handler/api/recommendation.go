package api

import (
	"log/slog"
	"net/http"

	reqdto "liblend/internal/handler/dto/request"
	resdto "liblend/internal/handler/dto/response"
	"liblend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const recommendationMaxLimit = 20

// RecommendationHandler degrades instead of failing: when the engine
// errors the endpoints answer 200 with an empty list and a static message,
// since recommendations are decoration on top of the catalog, not part of
// its contract.
type RecommendationHandler struct {
	engine   queries.RecommendationQueries
	advisor  queries.RecommendationAdvisor
	insights queries.InsightsQueries
}

func NewRecommendationHandler(
	engine queries.RecommendationQueries,
	advisor queries.RecommendationAdvisor,
	insights queries.InsightsQueries,
) *RecommendationHandler {
	return &RecommendationHandler{
		engine:   engine,
		advisor:  advisor,
		insights: insights,
	}
}

func (h *RecommendationHandler) Personalized(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	limit := bindLimit(c)

	recs, err := h.engine.Personalized(c.Request.Context(), userID, limit)
	if err != nil {
		slog.Warn("personalized recommendations failed", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, emptyRecommendations())
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecommendations(recs, false, ""))
}

func (h *RecommendationHandler) Popular(c *gin.Context) {
	limit := bindLimit(c)

	recs, err := h.engine.Popular(c.Request.Context(), limit)
	if err != nil {
		slog.Warn("popular recommendations failed", "error", err)
		c.JSON(http.StatusOK, emptyRecommendations())
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecommendations(recs, false, ""))
}

func (h *RecommendationHandler) Enhanced(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	limit := bindLimit(c)

	result, err := h.advisor.EnhancedRecommendations(c.Request.Context(), userID, limit)
	if err != nil {
		slog.Warn("enhanced recommendations failed", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, emptyRecommendations())
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecommendations(result.Recommendations, result.AIPowered, ""))
}

func (h *RecommendationHandler) EnhancedSearch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var q reqdto.SearchRecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'q' is required",
		})
		return
	}
	limit := clampLimit(q.Limit)

	result, err := h.advisor.SearchRecommendations(c.Request.Context(), userID, q.Query, limit)
	if err != nil {
		slog.Warn("search recommendations failed", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, emptyRecommendations())
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecommendations(result.Recommendations, result.AIPowered, ""))
}

func (h *RecommendationHandler) Insights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	insights, err := h.insights.ForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("reading insights failed", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, degradedInsights())
		return
	}

	c.JSON(http.StatusOK, insights)
}

func bindLimit(c *gin.Context) int {
	var q reqdto.RecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return 5
	}
	return clampLimit(q.Limit)
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 5
	}
	if limit > recommendationMaxLimit {
		return recommendationMaxLimit
	}
	return limit
}

func emptyRecommendations() *resdto.RecommendationListResponse {
	return resdto.FromRecommendations(nil, false, "Recommendations are temporarily unavailable")
}

func degradedInsights() *queries.ReadingInsights {
	return &queries.ReadingInsights{
		Insights: []string{"Unable to generate insights at this time."},
	}
}
