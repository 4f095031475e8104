package pricing

import (
	"sweeply/models"
	"sweeply/utils"
)

// Frequency discounts are an extension point: the table is keyed by the
// frequency enum and every rate is currently zero. Marketing owns the
// eventual values.
var frequencyDiscountRates = map[string]float64{
	models.FrequencyOneTime:  0,
	models.FrequencyWeekly:   0,
	models.FrequencyBiweekly: 0,
	models.FrequencyMonthly:  0,
}

// FrequencyDiscount returns the discount amount for a booking frequency.
// An empty frequency is treated as one-time.
func FrequencyDiscount(frequency string, subtotal float64) (float64, error) {
	if frequency == "" {
		frequency = models.FrequencyOneTime
	}
	rate, ok := frequencyDiscountRates[frequency]
	if !ok {
		return 0, utils.NewValidationError("unknown frequency %q", frequency)
	}
	return subtotal * rate, nil
}
