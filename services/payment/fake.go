package payment

import (
	"context"
	"fmt"
	"sync"

	"sweeply/models"

	"github.com/google/uuid"
)

// FakeGateway is the in-memory Gateway used in development and tests.
// Sessions start unpaid; MarkPaid simulates the customer completing payment.
type FakeGateway struct {
	mu       sync.Mutex
	sessions map[string]*models.PaymentResult
}

// NewFakeGateway creates an empty fake gateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{sessions: make(map[string]*models.PaymentResult)}
}

func (g *FakeGateway) Initiate(ctx context.Context, bookingID string, amount float64) (*models.PaymentSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	reference := "fake_" + uuid.New().String()
	g.sessions[reference] = &models.PaymentResult{
		Reference: reference,
		BookingID: bookingID,
		Paid:      false,
		Amount:    amount,
	}
	return &models.PaymentSession{
		Reference:        reference,
		AuthorizationURL: "https://pay.sweeply.example/checkout/" + reference,
	}, nil
}

func (g *FakeGateway) Verify(ctx context.Context, reference string) (*models.PaymentResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	result, ok := g.sessions[reference]
	if !ok {
		return nil, fmt.Errorf("unknown payment reference %s", reference)
	}
	copied := *result
	return &copied, nil
}

// MarkPaid flips a session to paid.
func (g *FakeGateway) MarkPaid(reference string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	result, ok := g.sessions[reference]
	if !ok {
		return fmt.Errorf("unknown payment reference %s", reference)
	}
	result.Paid = true
	return nil
}
