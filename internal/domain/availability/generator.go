package availability

import (
	"time"

	"octo-mock/internal/domain/product"
	"octo-mock/internal/pkg/errs"
)

// CapacityLedger exposes the running total of units already booked per
// (product, option, slot) tuple. It is the only durable mutable state
// behind availability; slots themselves are recomputed on every read.
type CapacityLedger interface {
	Booked(productID, optionID, slotID string) int
}

type Generator struct {
	ledger CapacityLedger
}

func NewGenerator(ledger CapacityLedger) *Generator {
	return &Generator{ledger: ledger}
}

// Generate materializes the candidate slots for the `days` calendar
// days starting at the day containing `from`, in the product's time
// zone, ordered chronologically. It is side-effect-free: identical
// inputs against an identical ledger state yield identical output.
func (g *Generator) Generate(p *product.Product, optionID string, from time.Time, days int) ([]Slot, error) {
	opt := p.Option(optionID)
	if opt == nil {
		return nil, errs.Mark(errs.Newf("option %q on product %q", optionID, p.ID), errs.ErrOptionNotFound)
	}

	loc := p.Location()
	local := from.In(loc)
	first := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	starts, err := recurrenceTimes(p, opt)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, days*max(len(starts), 1))
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		dateKey := FormatDateKey(day)

		if p.AvailabilityType == product.AvailabilityTypeStartTime {
			for _, st := range starts {
				at := time.Date(day.Year(), day.Month(), day.Day(), st.hour, st.minute, st.second, 0, loc)
				slots = append(slots, g.newSlot(p, opt, at.Format(SlotIDLayout), dateKey))
			}
			continue
		}
		// date-based products expose one slot per day, identified by
		// the bare date key
		slots = append(slots, g.newSlot(p, opt, dateKey, dateKey))
	}
	return slots, nil
}

func (g *Generator) newSlot(p *product.Product, opt *product.Option, id, dateKey string) Slot {
	capacity := opt.Capacity - g.ledger.Booked(p.ID, opt.ID, id)
	if capacity < 0 {
		capacity = 0
	}

	status := StatusAvailable
	if capacity == 0 {
		status = StatusSoldOut
	}

	return Slot{
		ID:        id,
		LocalDate: dateKey,
		Status:    status,
		Available: capacity > 0,
		Capacity:  capacity,
		Price:     slotPrice(p, opt),
	}
}

// slotPrice selects the slot's display price per the product's
// pricingPer mode: the booking price, or the option's leading unit.
func slotPrice(p *product.Product, opt *product.Option) product.Price {
	if p.Pricing.Per == product.PricingPerUnit && len(opt.Units) > 0 {
		return opt.Units[0].Price
	}
	return product.Price{Amount: p.Pricing.Amount, Currency: p.Pricing.Currency}
}

type clockTime struct {
	hour, minute, second int
}

func recurrenceTimes(p *product.Product, opt *product.Option) ([]clockTime, error) {
	if p.AvailabilityType != product.AvailabilityTypeStartTime {
		return nil, nil
	}
	starts := make([]clockTime, 0, len(p.AvailabilityConfig.StartTimes))
	for _, raw := range p.AvailabilityConfig.StartTimes {
		t, err := time.Parse("15:04:05", raw)
		if err != nil {
			// a misconfigured catalog must fail loudly, not produce
			// slots outside the recurrence pattern
			return nil, errs.Wrap(err, "invalid availability start time "+raw)
		}
		starts = append(starts, clockTime{t.Hour(), t.Minute(), t.Second()})
	}
	return starts, nil
}
