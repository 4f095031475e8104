package models

// PriceQuote is the full price breakdown for a configured booking. It is
// derived on demand and never persisted on its own; the draft only snapshots
// the total.
type PriceQuote struct {
	BasePrice     float64 `json:"basePrice"`
	BedroomsCost  float64 `json:"bedroomsCost"`
	BathroomsCost float64 `json:"bathroomsCost"`
	ExtrasTotal   float64 `json:"extrasTotal"`
	DeliveryFee   float64 `json:"deliveryFee"`
	ServiceFee    float64 `json:"serviceFee"`
	Discounts     float64 `json:"discounts"`
	TotalPrice    float64 `json:"totalPrice"`
}

// QuoteRequest is the body of POST /api/pricing/calculate.
type QuoteRequest struct {
	ServiceID string           `json:"serviceId" binding:"required"`
	Bedrooms  int              `json:"bedrooms"`
	Bathrooms int              `json:"bathrooms"`
	Extras    []ExtraSelection `json:"extras,omitempty"`
	SuburbID  string           `json:"suburbId,omitempty"`
	Frequency string           `json:"frequency,omitempty"`
}

// Lead is a marketing-funnel quote submission. Persistence is best effort:
// the funnel endpoint acknowledges the customer regardless.
type Lead struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Suburb  string `bson:"suburb,omitempty" json:"suburb,omitempty"`
	Message string `bson:"message,omitempty" json:"message,omitempty"`
}
