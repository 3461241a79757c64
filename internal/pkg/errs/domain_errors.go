package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrUnitNotFound    = errors.New("unit not found")

	// Availability errors
	ErrInvalidAvailabilityID = errors.New("invalid availability id")
	ErrSlotNotAvailable      = errors.New("not available")
	ErrInvalidRange          = errors.New("invalid date range")
	ErrInvalidDate           = errors.New("invalid date")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrCapacityExceeded      = errors.New("capacity exceeded")
	ErrNoUnitsRequested      = errors.New("no units requested")
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled")
	ErrDuplicateBookingID    = errors.New("booking id already exists")
)
