package memstore

import (
	"context"
	"sync"
	"time"

	"octo-mock/internal/domain/booking"
	"octo-mock/internal/pkg/errs"

	"github.com/google/uuid"
)

type slotKey struct {
	productID string
	optionID  string
	slotID    string
}

// counter serializes the read-modify-write of booked units for one
// slot. Contention is scoped to the slot being booked; unrelated slots
// never share a lock.
type counter struct {
	mu     sync.Mutex
	booked int
}

// Ledger is the booking store plus the capacity counters backing slot
// generation. Both live in memory; slot views are derived from the
// counters on every read, so there is no slot table to drift.
//
// Bookings cross the Ledger boundary as snapshots in both directions:
// Cancel mutates the retained entity under l.mu, so a live pointer
// shared with a concurrent reader would race.
type Ledger struct {
	mu       sync.RWMutex
	counters map[slotKey]*counter
	bookings map[uuid.UUID]*booking.Booking
	order    []uuid.UUID
}

func NewLedger() *Ledger {
	return &Ledger{
		counters: make(map[slotKey]*counter),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (l *Ledger) counter(k slotKey) *counter {
	l.mu.RLock()
	c, ok := l.counters[k]
	l.mu.RUnlock()
	if ok {
		return c
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok = l.counters[k]; ok {
		return c
	}
	c = &counter{}
	l.counters[k] = c
	return c
}

// Booked reports the units already reserved against a slot. It takes
// the same per-slot lock Reserve writes under, so a read issued after
// a booking commit always observes the decremented capacity.
func (l *Ledger) Booked(productID, optionID, slotID string) int {
	c := l.counter(slotKey{productID, optionID, slotID})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.booked
}

// Reserve atomically checks remaining capacity against the request and
// consumes it. Concurrent reservations against the same slot serialize
// here; their combined demand can never exceed limit.
func (l *Ledger) Reserve(_ context.Context, productID, optionID, slotID string, units, limit int) error {
	if units <= 0 {
		return errs.Mark(errs.Newf("reserve %d units", units), errs.ErrNoUnitsRequested)
	}
	c := l.counter(slotKey{productID, optionID, slotID})
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.booked+units > limit {
		return errs.Mark(
			errs.Newf("slot %s: %d booked + %d requested > %d", slotID, c.booked, units, limit),
			errs.ErrCapacityExceeded,
		)
	}
	c.booked += units
	return nil
}

// Release returns previously consumed units, e.g. on cancellation or
// when a reservation fails after the capacity was taken.
func (l *Ledger) Release(_ context.Context, productID, optionID, slotID string, units int) {
	c := l.counter(slotKey{productID, optionID, slotID})
	c.mu.Lock()
	defer c.mu.Unlock()
	c.booked -= units
	if c.booked < 0 {
		c.booked = 0
	}
}

func (l *Ledger) Insert(_ context.Context, b *booking.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.bookings[b.ID()]; exists {
		return errs.Mark(errs.Newf("booking %s", b.ID()), errs.ErrDuplicateBookingID)
	}
	l.bookings[b.ID()] = b.Snapshot()
	l.order = append(l.order, b.ID())
	return nil
}

func (l *Ledger) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.bookings[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("booking %s", id), errs.ErrBookingNotFound)
	}
	return b.Snapshot(), nil
}

// List returns bookings in insertion order. Both filters are optional
// and combine with logical AND.
func (l *Ledger) List(_ context.Context, resellerReference, supplierReference *string) []*booking.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*booking.Booking, 0, len(l.order))
	for _, id := range l.order {
		b := l.bookings[id]
		if resellerReference != nil &&
			(b.ResellerReference() == nil || *b.ResellerReference() != *resellerReference) {
			continue
		}
		if supplierReference != nil && b.SupplierReference() != *supplierReference {
			continue
		}
		out = append(out, b.Snapshot())
	}
	return out
}

// Cancel transitions a booking to CANCELLED and gives its capacity
// back to the slot counter. The booking row is kept; cancellation is a
// status change, never a removal.
func (l *Ledger) Cancel(_ context.Context, id uuid.UUID, now time.Time) (*booking.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bookings[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("booking %s", id), errs.ErrBookingNotFound)
	}
	if err := b.Cancel(now); err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotCancellable)
	}

	// l.mu is already held; touch the counters map directly
	k := slotKey{b.ProductID(), b.OptionID(), b.AvailabilityID()}
	c, ok := l.counters[k]
	if !ok {
		c = &counter{}
		l.counters[k] = c
	}
	c.mu.Lock()
	c.booked -= b.UnitCount()
	if c.booked < 0 {
		c.booked = 0
	}
	c.mu.Unlock()
	return b.Snapshot(), nil
}
