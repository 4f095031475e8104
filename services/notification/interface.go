package notification

import (
	"context"

	"sweeply/models"
)

// Mailer delivers customer email through the external provider. Delivery is
// best effort everywhere it is used: a failed send is logged, never surfaced
// to the customer flow.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, booking *models.BookingDraft) error
	SendBookingReminder(ctx context.Context, booking *models.BookingDraft) error
}

// NoopMailer discards all mail. Used in development and tests.
type NoopMailer struct{}

func (NoopMailer) SendBookingConfirmation(ctx context.Context, booking *models.BookingDraft) error {
	return nil
}

func (NoopMailer) SendBookingReminder(ctx context.Context, booking *models.BookingDraft) error {
	return nil
}
