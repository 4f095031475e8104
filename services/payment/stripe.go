package payment

import (
	"context"
	"fmt"
	"math"

	"sweeply/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeGateway implements Gateway using Stripe Checkout. The checkout
// session id doubles as the payment reference stored on the booking.
type StripeGateway struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// NewStripeGateway builds the Stripe gateway. The global stripe.Key is set
// once in main from configuration.
func NewStripeGateway(currency, publicBaseURL string) *StripeGateway {
	return &StripeGateway{
		Currency:   currency,
		SuccessURL: publicBaseURL + "/api/payments/verify?reference={CHECKOUT_SESSION_ID}",
		CancelURL:  publicBaseURL + "/booking/review",
	}
}

// Initiate opens a Checkout session for the booking total and returns the
// hosted payment URL.
func (g *StripeGateway) Initiate(ctx context.Context, bookingID string, amount float64) (*models.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(bookingID),
		SuccessURL:        stripe.String(g.SuccessURL),
		CancelURL:         stripe.String(g.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.Currency),
					UnitAmount: stripe.Int64(int64(math.Round(amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Sweeply home clean"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &models.PaymentSession{
		Reference:        sess.ID,
		AuthorizationURL: sess.URL,
	}, nil
}

// Verify retrieves the Checkout session and reports whether it was paid.
func (g *StripeGateway) Verify(ctx context.Context, reference string) (*models.PaymentResult, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(reference, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session %s: %w", reference, err)
	}
	return &models.PaymentResult{
		Reference: sess.ID,
		BookingID: sess.ClientReferenceID,
		Paid:      sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Amount:    float64(sess.AmountTotal) / 100,
	}, nil
}
