package api

import (
	"errors"
	"net/http"

	"octo-mock/internal/handler/httperr"
	"octo-mock/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the sentinel taxonomy onto the wire error
// envelope. The classification codes are stable strings; callers
// branch on them, so changing one is a breaking change.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_PRODUCT_ID", "The productId was missing or invalid")
	case errors.Is(err, errs.ErrOptionNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_OPTION_ID", "The optionId was missing or invalid")
	case errors.Is(err, errs.ErrUnitNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_UNIT_ID", "The unitId was missing or invalid")
	case errors.Is(err, errs.ErrInvalidAvailabilityID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_AVAILABILITY_ID", "The availabilityId was missing or invalid")
	case errors.Is(err, errs.ErrSlotNotAvailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "not available")
	case errors.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "capacity exceeded")
	case errors.Is(err, errs.ErrInvalidRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "invalid date range")
	case errors.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "invalid date")
	case errors.Is(err, errs.ErrNoUnitsRequested):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "at least one unit item is required")
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_BOOKING_UUID", "The uuid was missing or invalid")
	case errors.Is(err, errs.ErrBookingNotCancellable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "booking cannot be cancelled")
	case errors.Is(err, errs.ErrDuplicateBookingID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "uuid already in use")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL_SERVER_ERROR", "Internal server error")
	}
}

// failureReason labels the bookings_failed_total metric with a bounded
// set of values.
func failureReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, errs.ErrSlotNotAvailable):
		return "not_available"
	case errors.Is(err, errs.ErrInvalidAvailabilityID):
		return "invalid_availability_id"
	case errors.Is(err, errs.ErrProductNotFound),
		errors.Is(err, errs.ErrOptionNotFound),
		errors.Is(err, errs.ErrUnitNotFound):
		return "invalid_reference"
	default:
		return "other"
	}
}
