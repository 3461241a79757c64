package api

import (
	"net/http"

	reqdto "octo-mock/internal/handler/dto/request"
	resdto "octo-mock/internal/handler/dto/response"
	"octo-mock/internal/handler/httperr"
	"octo-mock/internal/handler/middleware"
	"octo-mock/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings usecase.BookingUseCase
}

func NewBookingHandler(bookings usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Create booking
// @Description Reserve capacity on an availability slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "The request body is not formatted correctly")
		return
	}

	b, err := h.bookings.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		middleware.BookingsFailedTotal.WithLabelValues(failureReason(err)).Inc()
		abortWithUseCaseError(c, err)
		return
	}

	middleware.BookingsCreatedTotal.Inc()
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Get booking
// @Description Get a booking by its uuid
// @Tags bookings
// @Produce json
// @Param uuid path string true "Booking uuid"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{uuid} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_BOOKING_UUID", "The uuid was missing or invalid")
		return
	}

	b, err := h.bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary List bookings
// @Description List bookings, optionally filtered by resellerReference and/or supplierReference
// @Tags bookings
// @Produce json
// @Param resellerReference query string false "Reseller reference filter"
// @Param supplierReference query string false "Supplier reference filter"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) GetBookings(c *gin.Context) {
	var filter usecase.BookingFilter
	if v, ok := c.GetQuery("resellerReference"); ok {
		filter.ResellerReference = &v
	}
	if v, ok := c.GetQuery("supplierReference"); ok {
		filter.SupplierReference = &v
	}

	bs, err := h.bookings.GetBookings(c.Request.Context(), filter)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bs))
}

// @Summary Cancel booking
// @Description Cancel a booking and release its capacity; the record is kept with CANCELLED status
// @Tags bookings
// @Produce json
// @Param uuid path string true "Booking uuid"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{uuid}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_BOOKING_UUID", "The uuid was missing or invalid")
		return
	}

	b, err := h.bookings.CancelBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
