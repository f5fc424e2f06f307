package bootstrap

import (
	"miccheck-web/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	BackendModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
