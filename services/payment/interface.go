package payment

import (
	"context"

	draftRepo "sweeply/database/repository/draft"
	"sweeply/models"
	"sweeply/services/notification"

	"go.uber.org/zap"
)

// Gateway is the external payment collaborator: it opens a hosted payment
// session and is the source of truth for whether a reference was paid. One
// implementation is selected at startup (Stripe or the fake).
type Gateway interface {
	Initiate(ctx context.Context, bookingID string, amount float64) (*models.PaymentSession, error)
	Verify(ctx context.Context, reference string) (*models.PaymentResult, error)
}

// ReminderScheduler queues a day-before reminder for a confirmed booking.
// Nil is allowed; reminders are then skipped.
type ReminderScheduler interface {
	ScheduleReminder(bookingID, date string) error
}

// PaymentService drives the payment handoff: initiation against the stored
// draft total and verification of the gateway's answer.
type PaymentService interface {
	InitiatePayment(ctx context.Context, bookingID string) (*models.PaymentSession, error)
	VerifyPayment(ctx context.Context, reference string) (*models.VerifyResponse, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Drafts    draftRepo.DraftRepository
	Gateway   Gateway
	Mailer    notification.Mailer
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

var _ PaymentService = (*DefaultPaymentService)(nil)
