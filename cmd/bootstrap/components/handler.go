package components

import (
	"octo-mock/internal/handler"
	"octo-mock/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
