//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"octo-mock/internal/domain/availability"
	"octo-mock/internal/infra/memstore"
	"octo-mock/internal/pkg/clock"
	"octo-mock/internal/pkg/config"
	"octo-mock/internal/pkg/errs"
	"octo-mock/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mock clock pins "today" to 2021-12-01; with the 30-day test
// window the generated slots span 2021-12-01 through 2021-12-30.
// Europe/London sits at +00:00 in December, so datetime ids carry a
// zero offset.
var testNow = time.Date(2021, 12, 1, 9, 0, 0, 0, time.UTC)

type fixtures struct {
	catalog      *memstore.Catalog
	ledger       *memstore.Ledger
	clock        *clock.MockClock
	availability usecase.AvailabilityUseCase
	bookings     usecase.BookingUseCase
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	catalog := memstore.NewCatalog(memstore.SeedProducts()...)
	ledger := memstore.NewLedger()
	clk := clock.NewMockClock(testNow)
	gen := availability.NewGenerator(ledger)
	cfg := config.NewTestConfig()

	availabilityUC := usecase.NewAvailabilityUseCase(catalog, gen, clk, cfg)
	return &fixtures{
		catalog:      catalog,
		ledger:       ledger,
		clock:        clk,
		availability: availabilityUC,
		bookings:     usecase.NewBookingUseCase(catalog, availabilityUC, ledger, ledger, clk),
	}
}

func strPtr(s string) *string { return &s }

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("single date selector", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "DEFAULT",
			LocalDate: strPtr("2021-12-10"),
		})
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "2021-12-10T00:00:00+00:00", slots[0].ID)
		assert.Equal(t, "2021-12-10T12:00:00+00:00", slots[1].ID)
	})

	t.Run("date range selector is inclusive", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID:      "1",
			OptionID:       "DEFAULT",
			LocalDateStart: strPtr("2021-12-10"),
			LocalDateEnd:   strPtr("2021-12-12"),
		})
		require.NoError(t, err)
		assert.Len(t, slots, 6)
		assert.Equal(t, "2021-12-10", slots[0].LocalDate)
		assert.Equal(t, "2021-12-12", slots[5].LocalDate)
	})

	t.Run("range union equals the per-day sum", func(t *testing.T) {
		f := newFixtures(t)
		ranged, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID:      "1",
			OptionID:       "DEFAULT",
			LocalDateStart: strPtr("2021-12-05"),
			LocalDateEnd:   strPtr("2021-12-08"),
		})
		require.NoError(t, err)

		var union []availability.Slot
		for _, d := range []string{"2021-12-05", "2021-12-06", "2021-12-07", "2021-12-08"} {
			day, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
				ProductID: "1",
				OptionID:  "DEFAULT",
				LocalDate: strPtr(d),
			})
			require.NoError(t, err)
			union = append(union, day...)
		}
		assert.Equal(t, union, ranged)
	})

	t.Run("id list selector", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "DEFAULT",
			AvailabilityIDs: []string{
				"2021-12-15T12:00:00+00:00",
				"2021-12-03T00:00:00+00:00",
			},
		})
		require.NoError(t, err)
		require.Len(t, slots, 2)
		// output follows generated order, not request order
		assert.Equal(t, "2021-12-03T00:00:00+00:00", slots[0].ID)
		assert.Equal(t, "2021-12-15T12:00:00+00:00", slots[1].ID)
	})

	t.Run("localDate wins over a range", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID:      "1",
			OptionID:       "DEFAULT",
			LocalDate:      strPtr("2021-12-10"),
			LocalDateStart: strPtr("2021-12-01"),
			LocalDateEnd:   strPtr("2021-12-20"),
		})
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("no selector yields empty, not an error", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "DEFAULT",
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("date outside the window yields empty", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "DEFAULT",
			LocalDate: strPtr("2022-06-01"),
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newFixtures(t)
		_, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "DEFAULT",
			LocalDate: strPtr("12/10/2021"),
		})
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("start after end", func(t *testing.T) {
		f := newFixtures(t)
		_, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID:      "1",
			OptionID:       "DEFAULT",
			LocalDateStart: strPtr("2021-12-20"),
			LocalDateEnd:   strPtr("2021-12-10"),
		})
		assert.ErrorIs(t, err, errs.ErrInvalidRange)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixtures(t)
		_, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "99",
			OptionID:  "DEFAULT",
			LocalDate: strPtr("2021-12-10"),
		})
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("unknown option", func(t *testing.T) {
		f := newFixtures(t)
		_, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "VIP",
			LocalDate: strPtr("2021-12-10"),
		})
		assert.ErrorIs(t, err, errs.ErrOptionNotFound)
	})

	t.Run("date based product serves bare date ids", func(t *testing.T) {
		f := newFixtures(t)
		slots, err := f.availability.GetAvailability(ctx, usecase.AvailabilityQuery{
			ProductID: "2",
			OptionID:  "DEFAULT",
			LocalDate: strPtr("2021-12-10"),
		})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "2021-12-10", slots[0].ID)
		assert.Equal(t, 20, slots[0].Capacity)
	})
}

func TestGetCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("one entry per day with slot counts", func(t *testing.T) {
		f := newFixtures(t)
		days, err := f.availability.GetCalendar(ctx, usecase.AvailabilityQuery{
			ProductID:      "1",
			OptionID:       "DEFAULT",
			LocalDateStart: strPtr("2021-12-10"),
			LocalDateEnd:   strPtr("2021-12-12"),
		})
		require.NoError(t, err)
		require.Len(t, days, 3)
		for i, d := range []string{"2021-12-10", "2021-12-11", "2021-12-12"} {
			assert.Equal(t, d, days[i].LocalDate)
			assert.Equal(t, 2, days[i].AvailabilityCount)
			assert.True(t, days[i].Available)
			assert.Equal(t, availability.StatusAvailable, days[i].Status)
		}
	})

	t.Run("day with every slot sold out reports unavailable", func(t *testing.T) {
		f := newFixtures(t)
		for _, id := range []string{"2021-12-10T00:00:00+00:00", "2021-12-10T12:00:00+00:00"} {
			require.NoError(t, f.ledger.Reserve(ctx, "1", "DEFAULT", id, 10, 10))
		}

		days, err := f.availability.GetCalendar(ctx, usecase.AvailabilityQuery{
			ProductID: "1",
			OptionID:  "DEFAULT",
			LocalDate: strPtr("2021-12-10"),
		})
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.False(t, days[0].Available)
		assert.Equal(t, availability.StatusSoldOut, days[0].Status)
		assert.Equal(t, 2, days[0].AvailabilityCount)
	})
}

func TestFindBookingAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves an open slot", func(t *testing.T) {
		f := newFixtures(t)
		p, err := f.catalog.FindByID(ctx, "1")
		require.NoError(t, err)

		slot, err := f.availability.FindBookingAvailability(ctx, p, "DEFAULT", "2021-12-10T12:00:00+00:00")
		require.NoError(t, err)
		assert.Equal(t, "2021-12-10T12:00:00+00:00", slot.ID)
		assert.Equal(t, 10, slot.Capacity)
	})

	t.Run("malformed id rejected before generation", func(t *testing.T) {
		f := newFixtures(t)
		p, err := f.catalog.FindByID(ctx, "1")
		require.NoError(t, err)

		_, err = f.availability.FindBookingAvailability(ctx, p, "DEFAULT", "2021-12-10T12:00:00Z")
		assert.ErrorIs(t, err, errs.ErrInvalidAvailabilityID)
	})

	t.Run("well formed but never generated", func(t *testing.T) {
		f := newFixtures(t)
		p, err := f.catalog.FindByID(ctx, "1")
		require.NoError(t, err)

		// 09:30 is not one of the product's start times
		_, err = f.availability.FindBookingAvailability(ctx, p, "DEFAULT", "2021-12-10T09:30:00+00:00")
		assert.ErrorIs(t, err, errs.ErrInvalidAvailabilityID)
	})

	t.Run("sold out slot is not bookable", func(t *testing.T) {
		f := newFixtures(t)
		p, err := f.catalog.FindByID(ctx, "1")
		require.NoError(t, err)
		require.NoError(t, f.ledger.Reserve(ctx, "1", "DEFAULT", "2021-12-10T12:00:00+00:00", 10, 10))

		_, err = f.availability.FindBookingAvailability(ctx, p, "DEFAULT", "2021-12-10T12:00:00+00:00")
		assert.ErrorIs(t, err, errs.ErrSlotNotAvailable)
	})

	t.Run("date based product takes a bare date id", func(t *testing.T) {
		f := newFixtures(t)
		p, err := f.catalog.FindByID(ctx, "2")
		require.NoError(t, err)

		slot, err := f.availability.FindBookingAvailability(ctx, p, "DEFAULT", "2021-12-10")
		require.NoError(t, err)
		assert.Equal(t, "2021-12-10", slot.ID)

		_, err = f.availability.FindBookingAvailability(ctx, p, "DEFAULT", "2021-12-10T00:00:00+00:00")
		assert.ErrorIs(t, err, errs.ErrInvalidAvailabilityID)
	})
}
