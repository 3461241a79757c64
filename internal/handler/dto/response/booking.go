package response

import (
	"time"

	"octo-mock/internal/domain/booking"
)

type BookingResponse struct {
	UUID              string             `json:"uuid"`
	Status            string             `json:"status"`
	SupplierReference string             `json:"supplierReference"`
	ResellerReference *string            `json:"resellerReference"`
	ProductID         string             `json:"productId"`
	OptionID          string             `json:"optionId"`
	AvailabilityID    string             `json:"availabilityId"`
	UnitItems         []UnitItemResponse `json:"unitItems"`
	UTCCreatedAt      string             `json:"utcCreatedAt"`
	UTCCancelledAt    *string            `json:"utcCancelledAt,omitempty"`
}

type UnitItemResponse struct {
	UUID   string `json:"uuid"`
	UnitID string `json:"unitId"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	items := make([]UnitItemResponse, len(b.UnitItems()))
	for i, item := range b.UnitItems() {
		items[i] = UnitItemResponse{UUID: item.UUID.String(), UnitID: item.UnitID}
	}

	resp := &BookingResponse{
		UUID:              b.ID().String(),
		Status:            string(b.Status()),
		SupplierReference: b.SupplierReference(),
		ResellerReference: b.ResellerReference(),
		ProductID:         b.ProductID(),
		OptionID:          b.OptionID(),
		AvailabilityID:    b.AvailabilityID(),
		UnitItems:         items,
		UTCCreatedAt:      b.CreatedAt().Format(time.RFC3339),
	}
	if at := b.CancelledAt(); at != nil {
		s := at.Format(time.RFC3339)
		resp.UTCCancelledAt = &s
	}
	return resp
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}
