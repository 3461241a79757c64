package product

import "time"

type AvailabilityType string

const (
	AvailabilityTypeStartTime    AvailabilityType = "START_TIME"
	AvailabilityTypeOpeningHours AvailabilityType = "OPENING_HOURS"
)

type PricingPer string

const (
	PricingPerBooking PricingPer = "PER_BOOKING"
	PricingPerUnit    PricingPer = "PER_UNIT"
)

type DeliveryFormat string

const (
	DeliveryFormatPDFURL DeliveryFormat = "PDF_URL"
	DeliveryFormatQRCode DeliveryFormat = "QRCODE"
)

type DeliveryMethod string

const (
	DeliveryMethodVoucher DeliveryMethod = "VOUCHER"
	DeliveryMethodTicket  DeliveryMethod = "TICKET"
)

type RedemptionMethod string

const (
	RedemptionMethodDigital RedemptionMethod = "DIGITAL"
	RedemptionMethodPrint   RedemptionMethod = "PRINT"
)

type Price struct {
	Amount   int
	Currency string
}

type Unit struct {
	ID           string
	InternalName string
	Price        Price
}

// Option is identified within its parent product; ids are unique per
// product option list.
type Option struct {
	ID           string
	InternalName string
	Default      bool
	// Capacity is the number of units a single generated slot can hold.
	Capacity int
	Units    []Unit
}

func (o *Option) Unit(id string) *Unit {
	for i := range o.Units {
		if o.Units[i].ID == id {
			return &o.Units[i]
		}
	}
	return nil
}

// AvailabilityConfig governs how slots recur. START_TIME products get
// one slot per start time per day; date-based products get one slot
// per day spanning the opening hours.
type AvailabilityConfig struct {
	StartTimes   []string // "HH:MM:SS", local to the product time zone
	OpeningHours []OpeningHours
}

type OpeningHours struct {
	From string
	To   string
}

type Pricing struct {
	Per                 PricingPer
	Currency            string
	AvailableCurrencies []string
	// Amount is the per-booking price; per-unit products price on the
	// option's units instead.
	Amount int
}

// Content carries the optional presentation fields gated by the
// octo/content capability.
type Content struct {
	Title            string
	Country          string
	Location         string
	ShortDescription string
}

// Product is an immutable catalog aggregate; mutation is an external
// administrative concern.
type Product struct {
	ID                   string
	InternalName         string
	Reference            *string
	Locale               string
	TimeZone             string
	AllowFreesale        bool
	InstantConfirmation  bool
	InstantDelivery      bool
	AvailabilityRequired bool
	AvailabilityType     AvailabilityType
	DeliveryFormats      []DeliveryFormat
	DeliveryMethods      []DeliveryMethod
	RedemptionMethod     RedemptionMethod
	Options              []Option
	Pricing              Pricing
	AvailabilityConfig   AvailabilityConfig
	Content              *Content
}

func (p *Product) Option(id string) *Option {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i]
		}
	}
	return nil
}

// Location resolves the product's configured time zone, falling back
// to UTC on unknown names so slot generation stays deterministic.
func (p *Product) Location() *time.Location {
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
