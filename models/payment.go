package models

// PaymentSession is returned when a payment is initiated with the external
// gateway: the customer is redirected to AuthorizationURL, and Reference is
// stored on the booking for later verification.
type PaymentSession struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorizationUrl"`
}

// PaymentResult is the gateway's answer when verifying a reference. The
// gateway is the source of truth for payment state.
type PaymentResult struct {
	Reference string  `json:"reference"`
	BookingID string  `json:"bookingId"`
	Paid      bool    `json:"paid"`
	Amount    float64 `json:"amount"`
}

// VerifyResponse is the body of GET /api/payments/verify.
type VerifyResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"` // booking status after verification
	Paid      bool   `json:"paid"`
}
