package response

import (
	"octo-mock/internal/domain/product"
	"octo-mock/internal/pkg/capability"
)

// Every field is listed by name on purpose: the flattened external
// shape is a compatibility surface, and a missing or renamed field
// must be a compile-time-visible change, not a reflection accident.

type PriceResponse struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type UnitResponse struct {
	ID           string         `json:"id"`
	InternalName string         `json:"internalName"`
	Pricing      *PriceResponse `json:"pricing,omitempty"`
}

type OptionResponse struct {
	ID           string         `json:"id"`
	Default      bool           `json:"default"`
	InternalName string         `json:"internalName"`
	Units        []UnitResponse `json:"units"`
}

type ProductResponse struct {
	ID                   string   `json:"id"`
	InternalName         string   `json:"internalName"`
	Reference            *string  `json:"reference"`
	Locale               string   `json:"locale"`
	TimeZone             string   `json:"timeZone"`
	AllowFreesale        bool     `json:"allowFreesale"`
	InstantConfirmation  bool     `json:"instantConfirmation"`
	InstantDelivery      bool     `json:"instantDelivery"`
	AvailabilityRequired bool     `json:"availabilityRequired"`
	AvailabilityType     string   `json:"availabilityType"`
	DeliveryFormats      []string `json:"deliveryFormats"`
	DeliveryMethods      []string `json:"deliveryMethods"`
	RedemptionMethod     string   `json:"redemptionMethod"`

	Options []OptionResponse `json:"options"`

	// octo/pricing
	PricingPer          *string  `json:"pricingPer,omitempty"`
	DefaultCurrency     *string  `json:"defaultCurrency,omitempty"`
	AvailableCurrencies []string `json:"availableCurrencies,omitempty"`

	// octo/content
	Title            *string `json:"title,omitempty"`
	Country          *string `json:"country,omitempty"`
	Location         *string `json:"location,omitempty"`
	ShortDescription *string `json:"shortDescription,omitempty"`
}

func FromProduct(p *product.Product, caps capability.Set) *ProductResponse {
	resp := &ProductResponse{
		ID:                   p.ID,
		InternalName:         p.InternalName,
		Reference:            p.Reference,
		Locale:               p.Locale,
		TimeZone:             p.TimeZone,
		AllowFreesale:        p.AllowFreesale,
		InstantConfirmation:  p.InstantConfirmation,
		InstantDelivery:      p.InstantDelivery,
		AvailabilityRequired: p.AvailabilityRequired,
		AvailabilityType:     string(p.AvailabilityType),
		DeliveryFormats:      formatStrings(p.DeliveryFormats),
		DeliveryMethods:      methodStrings(p.DeliveryMethods),
		RedemptionMethod:     string(p.RedemptionMethod),
		Options:              optionResponses(p, caps),
	}

	if caps.Has(capability.Pricing) {
		per := string(p.Pricing.Per)
		currency := p.Pricing.Currency
		resp.PricingPer = &per
		resp.DefaultCurrency = &currency
		resp.AvailableCurrencies = p.Pricing.AvailableCurrencies
	}

	if caps.Has(capability.Content) && p.Content != nil {
		resp.Title = &p.Content.Title
		resp.Country = &p.Content.Country
		resp.Location = &p.Content.Location
		resp.ShortDescription = &p.Content.ShortDescription
	}
	return resp
}

func optionResponses(p *product.Product, caps capability.Set) []OptionResponse {
	out := make([]OptionResponse, len(p.Options))
	for i, opt := range p.Options {
		units := make([]UnitResponse, len(opt.Units))
		for j, unit := range opt.Units {
			units[j] = UnitResponse{ID: unit.ID, InternalName: unit.InternalName}
			if caps.Has(capability.Pricing) {
				units[j].Pricing = &PriceResponse{Amount: unit.Price.Amount, Currency: unit.Price.Currency}
			}
		}
		out[i] = OptionResponse{
			ID:           opt.ID,
			Default:      opt.Default,
			InternalName: opt.InternalName,
			Units:        units,
		}
	}
	return out
}

func formatStrings(in []product.DeliveryFormat) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func methodStrings(in []product.DeliveryMethod) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
