package handler

import (
	"net/http"

	"liblend/internal/handler/api"
	"liblend/internal/handler/middleware"
	"liblend/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookHandler *api.BookHandler,
	lendingHandler *api.LendingHandler,
	recommendationHandler *api.RecommendationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookHandler, lendingHandler, recommendationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookHandler *api.BookHandler,
	lendingHandler *api.LendingHandler,
	recommendationHandler *api.RecommendationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		books := apiGroup.Group("/books")
		books.Use(authMiddleware.RequireAuth())
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: bookHandler.ListBooks},
				{Method: http.MethodPost, Path: "", Handler: bookHandler.CreateBook},
				{Method: http.MethodDelete, Path: "", Handler: bookHandler.BulkDeleteBooks},
				{Method: http.MethodGet, Path: "/search", Handler: bookHandler.SearchBooks},
				{Method: http.MethodGet, Path: "/genres", Handler: bookHandler.ListGenres},
				{Method: http.MethodGet, Path: "/my-checkouts", Handler: bookHandler.MyCheckouts},
				{Method: http.MethodGet, Path: "/notifications", Handler: bookHandler.Notifications},
				{Method: http.MethodGet, Path: "/analytics", Handler: bookHandler.Analytics},
				{Method: http.MethodGet, Path: "/:id", Handler: bookHandler.GetBook},
				{Method: http.MethodPut, Path: "/:id", Handler: bookHandler.UpdateBook},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookHandler.DeleteBook},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: lendingHandler.Checkout},
				{Method: http.MethodPost, Path: "/:id/checkin", Handler: lendingHandler.Checkin},
				{Method: http.MethodPost, Path: "/:id/renew", Handler: lendingHandler.Renew},
			})
		}

		recommendations := apiGroup.Group("/recommendations")
		recommendations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(recommendations, []route{
				{Method: http.MethodGet, Path: "", Handler: recommendationHandler.Personalized},
				{Method: http.MethodGet, Path: "/popular", Handler: recommendationHandler.Popular},
				{Method: http.MethodGet, Path: "/ai", Handler: recommendationHandler.Enhanced},
				{Method: http.MethodGet, Path: "/ai-search", Handler: recommendationHandler.EnhancedSearch},
				{Method: http.MethodGet, Path: "/insights", Handler: recommendationHandler.Insights},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
