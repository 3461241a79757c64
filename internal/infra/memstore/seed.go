package memstore

import "octo-mock/internal/domain/product"

// SeedProducts returns the fixed catalog the mock serves: one
// datetime-based product with two daily start times and per-unit
// pricing, and one date-based product priced per booking.
func SeedProducts() []*product.Product {
	return []*product.Product{
		{
			ID:                   "1",
			InternalName:         "PPU | OH",
			Locale:               "en",
			TimeZone:             "Europe/London",
			AllowFreesale:        false,
			InstantConfirmation:  true,
			InstantDelivery:      true,
			AvailabilityRequired: true,
			AvailabilityType:     product.AvailabilityTypeStartTime,
			DeliveryFormats:      []product.DeliveryFormat{product.DeliveryFormatPDFURL, product.DeliveryFormatQRCode},
			DeliveryMethods:      []product.DeliveryMethod{product.DeliveryMethodVoucher, product.DeliveryMethodTicket},
			RedemptionMethod:     product.RedemptionMethodDigital,
			Options: []product.Option{
				{
					ID:           "DEFAULT",
					InternalName: "DEFAULT",
					Default:      true,
					Capacity:     10,
					Units: []product.Unit{
						{ID: "adult", InternalName: "adult", Price: product.Price{Amount: 1000, Currency: "EUR"}},
						{ID: "child", InternalName: "child", Price: product.Price{Amount: 500, Currency: "EUR"}},
					},
				},
			},
			Pricing: product.Pricing{
				Per:                 product.PricingPerUnit,
				Currency:            "EUR",
				AvailableCurrencies: []string{"EUR", "USD", "GBP"},
			},
			AvailabilityConfig: product.AvailabilityConfig{
				StartTimes: []string{"00:00:00", "12:00:00"},
			},
			Content: &product.Content{
				Title:            "Amazing product",
				Country:          "GB",
				Location:         "London",
				ShortDescription: "Our most amazing product",
			},
		},
		{
			ID:                   "2",
			InternalName:         "PPB | DATE",
			Locale:               "en",
			TimeZone:             "Europe/London",
			AllowFreesale:        false,
			InstantConfirmation:  true,
			InstantDelivery:      true,
			AvailabilityRequired: true,
			AvailabilityType:     product.AvailabilityTypeOpeningHours,
			DeliveryFormats:      []product.DeliveryFormat{product.DeliveryFormatPDFURL},
			DeliveryMethods:      []product.DeliveryMethod{product.DeliveryMethodVoucher},
			RedemptionMethod:     product.RedemptionMethodDigital,
			Options: []product.Option{
				{
					ID:           "DEFAULT",
					InternalName: "DEFAULT",
					Default:      true,
					Capacity:     20,
					Units: []product.Unit{
						{ID: "adult", InternalName: "adult", Price: product.Price{Amount: 2000, Currency: "EUR"}},
					},
				},
			},
			Pricing: product.Pricing{
				Per:                 product.PricingPerBooking,
				Currency:            "EUR",
				AvailableCurrencies: []string{"EUR"},
				Amount:              4000,
			},
			AvailabilityConfig: product.AvailabilityConfig{
				OpeningHours: []product.OpeningHours{{From: "09:00", To: "17:00"}},
			},
			Content: &product.Content{
				Title:            "Day pass",
				Country:          "GB",
				Location:         "London",
				ShortDescription: "All-day entry, book per day",
			},
		},
	}
}
