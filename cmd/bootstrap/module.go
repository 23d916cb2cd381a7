package bootstrap

import (
	"luxe-escape/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	HandoffModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
