package bootstrap

import (
	"octo-mock/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
