package request

import (
	"octo-mock/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UUID              *uuid.UUID        `json:"uuid,omitempty"`
	ProductID         string            `json:"productId" binding:"required"`
	OptionID          string            `json:"optionId" binding:"required"`
	AvailabilityID    string            `json:"availabilityId" binding:"required"`
	UnitItems         []UnitItemRequest `json:"unitItems" binding:"required,min=1,dive"`
	ResellerReference *string           `json:"resellerReference,omitempty"`
}

type UnitItemRequest struct {
	UnitID string `json:"unitId" binding:"required"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	items := make([]usecase.UnitItemParams, len(r.UnitItems))
	for i, item := range r.UnitItems {
		items[i] = usecase.UnitItemParams{UnitID: item.UnitID}
	}
	return usecase.CreateBookingParams{
		UUID:              r.UUID,
		ProductID:         r.ProductID,
		OptionID:          r.OptionID,
		AvailabilityID:    r.AvailabilityID,
		UnitItems:         items,
		ResellerReference: r.ResellerReference,
	}
}
