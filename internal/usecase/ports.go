package usecase

import (
	"context"
	"time"

	"octo-mock/internal/domain/booking"
	"octo-mock/internal/domain/product"

	"github.com/google/uuid"
)

// ProductRepository is the read-only catalog lookup.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*product.Product, error)
	All(ctx context.Context) []*product.Product
}

// BookingRepository holds booking records.
type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, resellerReference, supplierReference *string) []*booking.Booking
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (*booking.Booking, error)
}

// CapacityReserver is the atomic capacity counter behind slot
// generation. Reserve must treat check-and-decrement as a single unit
// per (product, option, slot) key.
type CapacityReserver interface {
	Reserve(ctx context.Context, productID, optionID, slotID string, units, limit int) error
	Release(ctx context.Context, productID, optionID, slotID string, units int)
}
