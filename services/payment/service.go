package payment

import (
	"context"

	"sweeply/models"
	"sweeply/utils"

	"go.uber.org/zap"
)

// InitiatePayment computes the due amount from the draft's stored total,
// opens a gateway session, stores its reference and moves the draft to
// PENDING_PAYMENT. Re-initiating an already pending booking is allowed: the
// old session is simply superseded by the new reference.
func (s *DefaultPaymentService) InitiatePayment(ctx context.Context, bookingID string) (*models.PaymentSession, error) {
	draft, err := s.Drafts.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if draft.IsTerminal() {
		return nil, &utils.StateError{From: draft.Status, To: models.StatusPendingPayment}
	}
	if draft.TotalPrice <= 0 {
		return nil, utils.NewValidationError("booking %s has no priced total; complete the booking steps first", bookingID)
	}

	session, err := s.Gateway.Initiate(ctx, draft.ID, draft.TotalPrice)
	if err != nil {
		return nil, &utils.UpstreamError{System: "payment gateway", Err: err}
	}

	if err := s.Drafts.SetPaymentRef(ctx, draft.ID, session.Reference); err != nil {
		return nil, err
	}
	if draft.Status == models.StatusDraft {
		if _, err := s.Drafts.TransitionStatus(ctx, draft.ID, models.StatusPendingPayment); err != nil {
			return nil, err
		}
	}

	s.Logger.Info("payment initiated",
		zap.String("bookingID", draft.ID),
		zap.String("reference", session.Reference),
		zap.Float64("amount", draft.TotalPrice),
	)
	return session, nil
}

// VerifyPayment asks the gateway for the final state of a reference. Success
// confirms the booking and triggers the confirmation email; failure leaves
// it PENDING_PAYMENT for the customer to retry. Verifying an already
// confirmed booking is idempotent: no transition, no duplicate email.
func (s *DefaultPaymentService) VerifyPayment(ctx context.Context, reference string) (*models.VerifyResponse, error) {
	draft, err := s.Drafts.GetByPaymentRef(ctx, reference)
	if err != nil {
		return nil, err
	}
	if draft.Status == models.StatusConfirmed {
		return &models.VerifyResponse{Reference: reference, Status: draft.Status, Paid: true}, nil
	}

	result, err := s.Gateway.Verify(ctx, reference)
	if err != nil {
		return nil, &utils.UpstreamError{System: "payment gateway", Err: err}
	}
	if !result.Paid {
		return &models.VerifyResponse{Reference: reference, Status: draft.Status, Paid: false}, nil
	}

	confirmed, err := s.Drafts.TransitionStatus(ctx, draft.ID, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	if err := s.Mailer.SendBookingConfirmation(ctx, confirmed); err != nil {
		s.Logger.Error("failed to send confirmation email",
			zap.String("bookingID", confirmed.ID), zap.Error(err))
	}
	if s.Reminders != nil && confirmed.Date != "" {
		if err := s.Reminders.ScheduleReminder(confirmed.ID, confirmed.Date); err != nil {
			s.Logger.Error("failed to schedule reminder",
				zap.String("bookingID", confirmed.ID), zap.Error(err))
		}
	}

	s.Logger.Info("payment verified, booking confirmed",
		zap.String("bookingID", confirmed.ID), zap.String("reference", reference))
	return &models.VerifyResponse{Reference: reference, Status: confirmed.Status, Paid: true}, nil
}
