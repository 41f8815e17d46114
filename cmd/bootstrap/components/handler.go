package components

import (
	"liblend/internal/handler"
	"liblend/internal/handler/api"
	"liblend/internal/handler/middleware"
	"liblend/internal/pkg/config"
	"liblend/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookHandler,
		NewLendingHandler,
		api.NewRecommendationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewLendingHandler(lendingCommands commands.LendingCommands, cfg config.Config) *api.LendingHandler {
	return api.NewLendingHandler(lendingCommands, cfg.Lending)
}
