package components

import (
	"liblend/internal/infra/readstore"
	"liblend/internal/infra/writerepo"
	"liblend/internal/usecase/commands"
	"liblend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			writerepo.NewBookWriteRepo,
			fx.As(new(commands.BookRepository)),
		),
		fx.Annotate(
			writerepo.NewLedgerWriteRepo,
			fx.As(new(commands.LedgerRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)
