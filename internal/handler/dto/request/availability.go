package request

import "octo-mock/internal/usecase"

// AvailabilityRequest carries one of three mutually exclusive
// selectors next to the product/option pair. The transport layer
// requires productId and optionId; selector exclusivity is resolved by
// precedence in the usecase.
type AvailabilityRequest struct {
	ProductID       string   `json:"productId" binding:"required"`
	OptionID        string   `json:"optionId" binding:"required"`
	LocalDate       *string  `json:"localDate,omitempty"`
	LocalDateStart  *string  `json:"localDateStart,omitempty"`
	LocalDateEnd    *string  `json:"localDateEnd,omitempty"`
	AvailabilityIDs []string `json:"availabilityIds,omitempty"`
}

func (r AvailabilityRequest) ToQuery() usecase.AvailabilityQuery {
	return usecase.AvailabilityQuery{
		ProductID:       r.ProductID,
		OptionID:        r.OptionID,
		LocalDate:       r.LocalDate,
		LocalDateStart:  r.LocalDateStart,
		LocalDateEnd:    r.LocalDateEnd,
		AvailabilityIDs: r.AvailabilityIDs,
	}
}
