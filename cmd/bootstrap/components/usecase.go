package components

import (
	"liblend/internal/pkg/clock"
	"liblend/internal/pkg/config"
	"liblend/internal/usecase/commands"
	"liblend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookCommands,
		commands.NewLendingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookQueries,
		queries.NewRecommendationQueries,
		queries.NewInsightsQueries,
		NewRecommendationAdvisor,
	),
)

func NewRecommendationAdvisor(
	engine queries.RecommendationQueries,
	books queries.BookReadStore,
	ledger queries.LedgerReadStore,
	client queries.CompletionClient,
	cfg config.Config,
) queries.RecommendationAdvisor {
	return queries.NewRecommendationAdvisor(engine, books, ledger, client, cfg.OpenAI.Timeout)
}
