//go:build unit

package availability_test

import (
	"sort"
	"testing"
	"time"

	"octo-mock/internal/domain/availability"
	"octo-mock/internal/domain/product"
	"octo-mock/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedger struct {
	booked map[string]int
}

func (s *stubLedger) Booked(_, _, slotID string) int {
	return s.booked[slotID]
}

func startTimeProduct() *product.Product {
	return &product.Product{
		ID:               "1",
		TimeZone:         "Europe/London",
		AvailabilityType: product.AvailabilityTypeStartTime,
		Options: []product.Option{
			{
				ID:       "DEFAULT",
				Capacity: 10,
				Units: []product.Unit{
					{ID: "adult", Price: product.Price{Amount: 1000, Currency: "EUR"}},
				},
			},
		},
		Pricing: product.Pricing{Per: product.PricingPerUnit, Currency: "EUR"},
		AvailabilityConfig: product.AvailabilityConfig{
			StartTimes: []string{"00:00:00", "12:00:00"},
		},
	}
}

func dateBasedProduct() *product.Product {
	return &product.Product{
		ID:               "2",
		TimeZone:         "Europe/London",
		AvailabilityType: product.AvailabilityTypeOpeningHours,
		Options: []product.Option{
			{ID: "DEFAULT", Capacity: 20, Units: []product.Unit{{ID: "adult"}}},
		},
		Pricing: product.Pricing{Per: product.PricingPerBooking, Currency: "EUR", Amount: 4000},
	}
}

var refDate = time.Date(2021, 12, 20, 9, 30, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	gen := availability.NewGenerator(&stubLedger{})

	t.Run("start time slots carry the full calendar profile", func(t *testing.T) {
		slots, err := gen.Generate(startTimeProduct(), "DEFAULT", refDate, 2)
		require.NoError(t, err)
		require.Len(t, slots, 4)

		assert.Equal(t, "2021-12-20T00:00:00+00:00", slots[0].ID)
		assert.Equal(t, "2021-12-20T12:00:00+00:00", slots[1].ID)
		assert.Equal(t, "2021-12-21T00:00:00+00:00", slots[2].ID)
		assert.Equal(t, "2021-12-21T12:00:00+00:00", slots[3].ID)
		assert.Equal(t, "2021-12-20", slots[0].LocalDate)
	})

	t.Run("date based slots use the bare date key", func(t *testing.T) {
		slots, err := gen.Generate(dateBasedProduct(), "DEFAULT", refDate, 3)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "2021-12-20", slots[0].ID)
		assert.Equal(t, "2021-12-22", slots[2].ID)
	})

	t.Run("chronological order", func(t *testing.T) {
		slots, err := gen.Generate(startTimeProduct(), "DEFAULT", refDate, 14)
		require.NoError(t, err)
		assert.True(t, sort.SliceIsSorted(slots, func(i, j int) bool {
			return slots[i].ID < slots[j].ID
		}))
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := gen.Generate(startTimeProduct(), "MISSING", refDate, 1)
		assert.ErrorIs(t, err, errs.ErrOptionNotFound)
	})

	t.Run("per unit pricing uses the leading unit", func(t *testing.T) {
		slots, err := gen.Generate(startTimeProduct(), "DEFAULT", refDate, 1)
		require.NoError(t, err)
		assert.Equal(t, product.Price{Amount: 1000, Currency: "EUR"}, slots[0].Price)
	})

	t.Run("per booking pricing uses the product amount", func(t *testing.T) {
		slots, err := gen.Generate(dateBasedProduct(), "DEFAULT", refDate, 1)
		require.NoError(t, err)
		assert.Equal(t, product.Price{Amount: 4000, Currency: "EUR"}, slots[0].Price)
	})
}

func TestGenerateDeterminism(t *testing.T) {
	ledger := &stubLedger{booked: map[string]int{"2021-12-20T12:00:00+00:00": 3}}
	gen := availability.NewGenerator(ledger)

	first, err := gen.Generate(startTimeProduct(), "DEFAULT", refDate, 7)
	require.NoError(t, err)
	second, err := gen.Generate(startTimeProduct(), "DEFAULT", refDate, 7)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestGenerateAvailabilityInvariant(t *testing.T) {
	ledger := &stubLedger{booked: map[string]int{
		"2021-12-20T00:00:00+00:00": 10, // fully booked
		"2021-12-20T12:00:00+00:00": 9,
		"2021-12-21T00:00:00+00:00": 12, // overbooked counters clamp at zero
	}}
	gen := availability.NewGenerator(ledger)

	slots, err := gen.Generate(startTimeProduct(), "DEFAULT", refDate, 2)
	require.NoError(t, err)

	for _, s := range slots {
		assert.Equal(t, s.Capacity > 0, s.Available, "slot %s", s.ID)
		assert.GreaterOrEqual(t, s.Capacity, 0, "slot %s", s.ID)
		if s.Capacity == 0 {
			assert.Equal(t, availability.StatusSoldOut, s.Status)
		}
	}

	assert.False(t, slots[0].Available)
	assert.Equal(t, 0, slots[0].Capacity)
	assert.True(t, slots[1].Available)
	assert.Equal(t, 1, slots[1].Capacity)
	assert.Equal(t, 0, slots[2].Capacity)
}

func TestGenerateRejectsBadStartTime(t *testing.T) {
	p := startTimeProduct()
	p.AvailabilityConfig.StartTimes = []string{"25:99:00"}
	gen := availability.NewGenerator(&stubLedger{})

	_, err := gen.Generate(p, "DEFAULT", refDate, 1)
	assert.Error(t, err)
}
