package request

type RecommendationQuery struct {
	Limit int `form:"limit,default=5"`
}

type SearchRecommendationQuery struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=5"`
}
