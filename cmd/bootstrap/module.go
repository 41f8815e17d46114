package bootstrap

import (
	"liblend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	LLMModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
