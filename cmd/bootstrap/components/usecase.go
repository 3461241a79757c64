package components

import (
	"octo-mock/internal/pkg/clock"
	"octo-mock/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewProductUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
	),
)
