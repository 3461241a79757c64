package api

import (
	"net/http"

	reqdto "octo-mock/internal/handler/dto/request"
	resdto "octo-mock/internal/handler/dto/response"
	"octo-mock/internal/handler/httperr"
	"octo-mock/internal/handler/middleware"
	"octo-mock/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availability usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Query availability
// @Description Generate bookable slots for a product option, filtered by a single date, a date range, or an explicit id list
// @Tags availability
// @Accept json
// @Produce json
// @Param Octo-Capabilities header string false "Comma-separated capability list"
// @Param request body reqdto.AvailabilityRequest true "Availability query"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [post]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	caps := middleware.GetCapabilities(c)

	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "The request body is not formatted correctly")
		return
	}

	slots, err := h.availability.GetAvailability(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(slots, caps))
}

// @Summary Query availability calendar
// @Description Roll generated slots up into one entry per calendar day
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityRequest true "Availability query"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/calendar [post]
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "BAD_REQUEST", "The request body is not formatted correctly")
		return
	}

	days, err := h.availability.GetCalendar(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDays(days))
}
