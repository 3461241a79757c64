package bootstrap

import (
	"octo-mock/internal/domain/availability"
	"octo-mock/internal/infra/memstore"
	"octo-mock/internal/usecase"

	"go.uber.org/fx"
)

// StoreModule wires the volatile in-memory store: the seeded product
// catalog and the booking/capacity ledger behind the usecase ports.
var StoreModule = fx.Module("store",
	fx.Provide(
		NewSeededCatalog,
		fx.Annotate(
			func(c *memstore.Catalog) *memstore.Catalog { return c },
			fx.As(new(usecase.ProductRepository)),
		),
		memstore.NewLedger,
		fx.Annotate(
			func(l *memstore.Ledger) *memstore.Ledger { return l },
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.CapacityReserver)),
			fx.As(new(availability.CapacityLedger)),
		),
		availability.NewGenerator,
	),
)

func NewSeededCatalog() *memstore.Catalog {
	return memstore.NewCatalog(memstore.SeedProducts()...)
}
