package response

import (
	"octo-mock/internal/domain/availability"
	"octo-mock/internal/pkg/capability"
)

type AvailabilityResponse struct {
	ID        string `json:"id"`
	LocalDate string `json:"localDate"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
	Capacity  int    `json:"capacity"`

	// octo/pricing
	Price *PriceResponse `json:"price,omitempty"`
}

type CalendarDayResponse struct {
	LocalDate         string `json:"localDate"`
	Status            string `json:"status"`
	Available         bool   `json:"available"`
	AvailabilityCount int    `json:"availabilityCount"`
}

func FromSlot(s availability.Slot, caps capability.Set) AvailabilityResponse {
	resp := AvailabilityResponse{
		ID:        s.ID,
		LocalDate: s.LocalDate,
		Status:    string(s.Status),
		Available: s.Available,
		Capacity:  s.Capacity,
	}
	if caps.Has(capability.Pricing) {
		resp.Price = &PriceResponse{Amount: s.Price.Amount, Currency: s.Price.Currency}
	}
	return resp
}

func FromSlots(slots []availability.Slot, caps capability.Set) []AvailabilityResponse {
	out := make([]AvailabilityResponse, len(slots))
	for i, s := range slots {
		out[i] = FromSlot(s, caps)
	}
	return out
}

func FromCalendarDays(days []availability.CalendarDay) []CalendarDayResponse {
	out := make([]CalendarDayResponse, len(days))
	for i, d := range days {
		out[i] = CalendarDayResponse{
			LocalDate:         d.LocalDate,
			Status:            string(d.Status),
			Available:         d.Available,
			AvailabilityCount: d.AvailabilityCount,
		}
	}
	return out
}
