package pricing

import (
	"math"

	"sweeply/models"
	"sweeply/utils"
)

// ExtraLine pairs a resolved catalog extra with the selected quantity.
type ExtraLine struct {
	Extra    models.Extra
	Quantity int
}

// Quote composes the full price breakdown for a configured booking. It is a
// pure function: no side effects, safe to call concurrently and repeatedly,
// and deterministic for identical inputs.
//
// The base fee covers the first bedroom and bathroom, so each room kind
// charges max(0, n-1) increments. The service fee is a flat platform charge
// plus a percentage of the subtotal. Discounts come from the frequency
// lookup.
func Quote(svc models.Service, bedrooms, bathrooms int, extras []ExtraLine, suburb *models.Suburb, frequency string) (models.PriceQuote, error) {
	if bedrooms < 0 {
		return models.PriceQuote{}, utils.NewValidationError("bedrooms must not be negative, got %d", bedrooms)
	}
	if bathrooms < 0 {
		return models.PriceQuote{}, utils.NewValidationError("bathrooms must not be negative, got %d", bathrooms)
	}

	bedroomsCost := float64(max(0, bedrooms-1)) * svc.PerBedroom
	bathroomsCost := float64(max(0, bathrooms-1)) * svc.PerBathroom

	extrasTotal := 0.0
	for _, line := range extras {
		if line.Quantity < 1 {
			return models.PriceQuote{}, utils.NewValidationError("extra %q quantity must be at least 1, got %d", line.Extra.ID, line.Quantity)
		}
		extrasTotal += line.Extra.Price * float64(line.Quantity)
	}

	deliveryFee := 0.0
	if suburb != nil {
		deliveryFee = suburb.DeliveryFee
	}

	subtotal := svc.BaseFee + bedroomsCost + bathroomsCost + extrasTotal + deliveryFee
	serviceFee := svc.ServiceFeeFlat + subtotal*svc.ServiceFeePct/100

	discounts, err := FrequencyDiscount(frequency, subtotal)
	if err != nil {
		return models.PriceQuote{}, err
	}

	return models.PriceQuote{
		BasePrice:     round2(svc.BaseFee),
		BedroomsCost:  round2(bedroomsCost),
		BathroomsCost: round2(bathroomsCost),
		ExtrasTotal:   round2(extrasTotal),
		DeliveryFee:   round2(deliveryFee),
		ServiceFee:    round2(serviceFee),
		Discounts:     round2(discounts),
		TotalPrice:    round2(subtotal + serviceFee - discounts),
	}, nil
}

// round2 rounds a money amount to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
