package usecase

import (
	"context"

	"octo-mock/internal/domain/booking"
	"octo-mock/internal/pkg/clock"
	"octo-mock/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	UUID              *uuid.UUID
	ProductID         string
	OptionID          string
	AvailabilityID    string
	UnitItems         []UnitItemParams
	ResellerReference *string
}

type UnitItemParams struct {
	UnitID string
}

type BookingFilter struct {
	ResellerReference *string
	SupplierReference *string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetBookings(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	products     ProductRepository
	availability AvailabilityUseCase
	bookings     BookingRepository
	capacity     CapacityReserver
	clock        clock.Clock
}

func NewBookingUseCase(
	products ProductRepository,
	availabilityUC AvailabilityUseCase,
	bookings BookingRepository,
	capacity CapacityReserver,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		products:     products,
		availability: availabilityUC,
		bookings:     bookings,
		capacity:     capacity,
		clock:        clk,
	}
}

// CreateBooking re-resolves the referenced slot, then lets the ledger
// arbitrate capacity: the reserve call is the single atomic
// check-and-decrement, so concurrent requests against one slot cannot
// jointly overbook it.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	p, err := u.products.FindByID(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	opt := p.Option(params.OptionID)
	if opt == nil {
		return nil, errs.Mark(errs.Newf("option %q on product %q", params.OptionID, p.ID), errs.ErrOptionNotFound)
	}

	if len(params.UnitItems) == 0 {
		return nil, errs.Mark(errs.New("empty unitItems"), errs.ErrNoUnitsRequested)
	}
	unitIDs := make([]string, len(params.UnitItems))
	for i, item := range params.UnitItems {
		if opt.Unit(item.UnitID) == nil {
			return nil, errs.Mark(errs.Newf("unit %q on option %q", item.UnitID, opt.ID), errs.ErrUnitNotFound)
		}
		unitIDs[i] = item.UnitID
	}

	slot, err := u.availability.FindBookingAvailability(ctx, p, params.OptionID, params.AvailabilityID)
	if err != nil {
		return nil, err
	}

	if err := u.capacity.Reserve(ctx, p.ID, opt.ID, slot.ID, len(unitIDs), opt.Capacity); err != nil {
		return nil, err
	}

	id := uuid.Nil
	if params.UUID != nil {
		id = *params.UUID
	}
	b, err := booking.NewBooking(id, p.ID, opt.ID, slot.ID, unitIDs, params.ResellerReference, u.clock.Now())
	if err != nil {
		u.capacity.Release(ctx, p.ID, opt.ID, slot.ID, len(unitIDs))
		return nil, errs.Wrap(err, "build booking")
	}

	if err := u.bookings.Insert(ctx, b); err != nil {
		// the capacity was taken but the row cannot land; hand it back
		u.capacity.Release(ctx, p.ID, opt.ID, slot.ID, b.UnitCount())
		return nil, err
	}
	return b, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return u.bookings.FindByID(ctx, id)
}

func (u *bookingUseCaseImpl) GetBookings(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error) {
	return u.bookings.List(ctx, filter.ResellerReference, filter.SupplierReference), nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return u.bookings.Cancel(ctx, id, u.clock.Now())
}
