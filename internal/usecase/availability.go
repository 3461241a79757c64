package usecase

import (
	"context"
	"time"

	"octo-mock/internal/domain/availability"
	"octo-mock/internal/domain/product"
	"octo-mock/internal/pkg/clock"
	"octo-mock/internal/pkg/config"
	"octo-mock/internal/pkg/errs"
)

// AvailabilityQuery carries at most one of three mutually exclusive
// selectors; precedence is localDate, then the date range, then the
// explicit id list.
type AvailabilityQuery struct {
	ProductID       string
	OptionID        string
	LocalDate       *string
	LocalDateStart  *string
	LocalDateEnd    *string
	AvailabilityIDs []string
}

type AvailabilityUseCase interface {
	GetAvailability(ctx context.Context, q AvailabilityQuery) ([]availability.Slot, error)
	GetCalendar(ctx context.Context, q AvailabilityQuery) ([]availability.CalendarDay, error)
	FindBookingAvailability(ctx context.Context, p *product.Product, optionID, availabilityID string) (*availability.Slot, error)
}

type availabilityUseCaseImpl struct {
	products   ProductRepository
	generator  *availability.Generator
	clock      clock.Clock
	windowDays int
}

func NewAvailabilityUseCase(
	products ProductRepository,
	generator *availability.Generator,
	clk clock.Clock,
	cfg config.Config,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		products:   products,
		generator:  generator,
		clock:      clk,
		windowDays: cfg.Catalog.WindowDays,
	}
}

// GetAvailability generates the full slot window anchored at today and
// keeps whatever the single active selector admits. No selector is a
// defined, non-fatal case: the result is empty, never an error.
func (u *availabilityUseCaseImpl) GetAvailability(ctx context.Context, q AvailabilityQuery) ([]availability.Slot, error) {
	p, err := u.products.FindByID(ctx, q.ProductID)
	if err != nil {
		return nil, err
	}

	slots, err := u.generator.Generate(p, q.OptionID, u.clock.Now(), u.windowDays)
	if err != nil {
		return nil, err
	}

	switch {
	case q.LocalDate != nil:
		return filterSingleDate(*q.LocalDate, slots)
	case q.LocalDateStart != nil && q.LocalDateEnd != nil:
		return filterDateRange(*q.LocalDateStart, *q.LocalDateEnd, slots)
	case len(q.AvailabilityIDs) > 0:
		return filterByIDs(q.AvailabilityIDs, slots), nil
	}
	return []availability.Slot{}, nil
}

// GetCalendar rolls the selected slots up into one entry per calendar
// day, preserving chronological order.
func (u *availabilityUseCaseImpl) GetCalendar(ctx context.Context, q AvailabilityQuery) ([]availability.CalendarDay, error) {
	slots, err := u.GetAvailability(ctx, q)
	if err != nil {
		return nil, err
	}

	days := []availability.CalendarDay{}
	index := map[string]int{}
	for _, s := range slots {
		i, seen := index[s.LocalDate]
		if !seen {
			index[s.LocalDate] = len(days)
			days = append(days, availability.CalendarDay{
				LocalDate: s.LocalDate,
				Status:    availability.StatusSoldOut,
			})
			i = len(days) - 1
		}
		days[i].AvailabilityCount++
		if s.Available {
			days[i].Available = true
			days[i].Status = availability.StatusAvailable
		}
	}
	return days, nil
}

// FindBookingAvailability resolves the exact slot a booking consumes.
// The id format is checked before any generation work; a malformed id
// and an unknown id surface as the same failure kind, since both mean
// the caller supplied an id we cannot honor.
func (u *availabilityUseCaseImpl) FindBookingAvailability(
	ctx context.Context,
	p *product.Product,
	optionID, availabilityID string,
) (*availability.Slot, error) {
	day, err := u.parseSlotDay(p, availabilityID)
	if err != nil {
		return nil, err
	}

	slots, err := u.generator.Generate(p, optionID, day, 1)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		if slots[i].ID != availabilityID {
			continue
		}
		if !slots[i].Available {
			return nil, errs.Mark(errs.Newf("availability %s", availabilityID), errs.ErrSlotNotAvailable)
		}
		return &slots[i], nil
	}
	return nil, errs.Mark(errs.Newf("availability %s not generated", availabilityID), errs.ErrInvalidAvailabilityID)
}

func (u *availabilityUseCaseImpl) parseSlotDay(p *product.Product, availabilityID string) (time.Time, error) {
	if p.AvailabilityType == product.AvailabilityTypeStartTime {
		t, err := availability.ParseSlotID(availabilityID)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(p.Location()), nil
	}
	return availability.ParseDateSlotID(availabilityID, p.Location())
}

func filterSingleDate(date string, slots []availability.Slot) ([]availability.Slot, error) {
	if _, err := availability.ParseDateKey(date); err != nil {
		return nil, err
	}
	out := []availability.Slot{}
	for _, s := range slots {
		if s.LocalDate == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func filterDateRange(start, end string, slots []availability.Slot) ([]availability.Slot, error) {
	from, err := availability.ParseDateKey(start)
	if err != nil {
		return nil, err
	}
	to, err := availability.ParseDateKey(end)
	if err != nil {
		return nil, err
	}
	days, err := availability.EnumerateDays(from, to)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(days))
	for _, d := range days {
		wanted[d] = struct{}{}
	}

	out := []availability.Slot{}
	for _, s := range slots {
		if _, ok := wanted[s.LocalDate]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// filterByIDs keeps slots whose full id is in the supplied list; the
// input order is irrelevant, output follows generated order.
func filterByIDs(ids []string, slots []availability.Slot) []availability.Slot {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := []availability.Slot{}
	for _, s := range slots {
		if _, ok := wanted[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}
