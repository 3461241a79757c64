package availability

import (
	"time"

	"octo-mock/internal/domain/product"
	"octo-mock/internal/pkg/errs"
)

// Slot identifiers are a serialization of (product, option, timestamp),
// not stored keys. Datetime slots use the full calendar profile with a
// numeric UTC offset; date-based slots use the bare date.
const (
	SlotIDLayout  = "2006-01-02T15:04:05-07:00"
	DateKeyLayout = "2006-01-02"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusSoldOut   Status = "SOLD_OUT"
)

// Slot is a derived view over the catalog and the capacity ledger; it
// is regenerated on every read and never persisted.
type Slot struct {
	ID        string
	LocalDate string
	Status    Status
	Available bool
	Capacity  int
	Price     product.Price
}

// CalendarDay is the per-day rollup of a slot sequence.
type CalendarDay struct {
	LocalDate         string
	Status            Status
	Available         bool
	AvailabilityCount int
}

// ParseSlotID validates s against the datetime profile. The format is
// bit-exact: values that parse but do not re-format to the identical
// string (alternate offset notation such as "Z", unpadded components)
// are rejected.
func ParseSlotID(s string) (time.Time, error) {
	t, err := time.Parse(SlotIDLayout, s)
	if err != nil || t.Format(SlotIDLayout) != s {
		return time.Time{}, errs.Mark(errs.Newf("malformed availability id %q", s), errs.ErrInvalidAvailabilityID)
	}
	return t, nil
}

// ParseDateSlotID validates s against the date-only profile used by
// date-based products, interpreted in the product's time zone.
func ParseDateSlotID(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, s, loc)
	if err != nil || t.Format(DateKeyLayout) != s {
		return time.Time{}, errs.Mark(errs.Newf("malformed availability id %q", s), errs.ErrInvalidAvailabilityID)
	}
	return t, nil
}
