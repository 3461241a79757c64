package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoUnits        = errors.New("booking requires at least one unit item")
	ErrNotCancellable = errors.New("booking is not in a cancellable state")
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

type UnitItem struct {
	UUID   uuid.UUID
	UnitID string
}

// Booking records the capacity a reservation consumed against one
// availability slot. It references the slot by id only; the slot is
// re-derived from the ledger whenever it is read.
type Booking struct {
	id                uuid.UUID
	supplierReference string
	resellerReference *string
	productID         string
	optionID          string
	availabilityID    string
	unitItems         []UnitItem
	status            Status
	createdAt         time.Time
	cancelledAt       *time.Time
}

// NewBooking creates a confirmed booking. A zero id means the server
// generates one; a caller-supplied id is kept for idempotent retries.
func NewBooking(
	id uuid.UUID,
	productID, optionID, availabilityID string,
	unitIDs []string,
	resellerReference *string,
	now time.Time,
) (*Booking, error) {
	if len(unitIDs) == 0 {
		return nil, ErrNoUnits
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	items := make([]UnitItem, len(unitIDs))
	for i, unitID := range unitIDs {
		items[i] = UnitItem{UUID: uuid.New(), UnitID: unitID}
	}

	return &Booking{
		id:                id,
		supplierReference: newSupplierReference(),
		resellerReference: resellerReference,
		productID:         productID,
		optionID:          optionID,
		availabilityID:    availabilityID,
		unitItems:         items,
		status:            StatusConfirmed,
		createdAt:         now.UTC(),
	}, nil
}

// Snapshot returns a detached copy. The store mutates its retained
// entity on cancellation, so anything handed to a caller must not
// alias it.
func (b *Booking) Snapshot() *Booking {
	c := *b
	c.unitItems = append([]UnitItem(nil), b.unitItems...)
	if b.cancelledAt != nil {
		at := *b.cancelledAt
		c.cancelledAt = &at
	}
	return &c
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	at := now.UTC()
	b.cancelledAt = &at
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// UnitCount is the quantity of slot capacity this booking consumed.
func (b *Booking) UnitCount() int {
	return len(b.unitItems)
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) SupplierReference() string  { return b.supplierReference }
func (b *Booking) ResellerReference() *string { return b.resellerReference }
func (b *Booking) ProductID() string          { return b.productID }
func (b *Booking) OptionID() string           { return b.optionID }
func (b *Booking) AvailabilityID() string     { return b.availabilityID }
func (b *Booking) UnitItems() []UnitItem      { return b.unitItems }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time    { return b.cancelledAt }

func newSupplierReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
