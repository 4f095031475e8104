package booking

import (
	"context"
	"time"

	"sweeply/models"
	"sweeply/utils"
)

// UpsertDraft validates the patch, reprices the draft when enough of it is
// configured, and merges it into the session's active draft. Creation and
// merge are a single atomic operation in the store, so simultaneous requests
// for one session can never leave two active drafts behind.
func (s *DefaultBookingService) UpsertDraft(ctx context.Context, sessionID string, patch models.DraftPatch) (*models.BookingDraft, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	// Referenced catalog entities must exist before they land on the draft.
	if patch.ServiceID != nil {
		if _, err := s.Catalog.GetServiceByID(ctx, *patch.ServiceID); err != nil {
			return nil, err
		}
	}
	if patch.SuburbID != nil {
		if _, err := s.Catalog.GetSuburbByID(ctx, *patch.SuburbID); err != nil {
			return nil, err
		}
	}
	if patch.Extras != nil {
		if _, err := s.resolveExtras(ctx, *patch.Extras); err != nil {
			return nil, err
		}
	}

	draft, err := s.Drafts.Upsert(ctx, sessionID, patch)
	if err != nil {
		return nil, err
	}

	// Reprice from the merged state once a service is chosen. The stored
	// total is the price snapshot payment will charge.
	if draft.ServiceID != "" {
		quote, err := s.CalculateQuote(ctx, models.QuoteRequest{
			ServiceID: draft.ServiceID,
			Bedrooms:  draft.Bedrooms,
			Bathrooms: draft.Bathrooms,
			Extras:    draft.Extras,
			SuburbID:  draft.SuburbID,
			Frequency: draft.Frequency,
		})
		if err != nil {
			return nil, err
		}
		if quote.TotalPrice != draft.TotalPrice {
			total := quote.TotalPrice
			draft, err = s.Drafts.Upsert(ctx, sessionID, models.DraftPatch{TotalPrice: &total})
			if err != nil {
				return nil, err
			}
		}
	}
	return draft, nil
}

// GetDraft retrieves the session's active draft.
func (s *DefaultBookingService) GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.Drafts.GetBySession(ctx, sessionID)
}

// CancelDraft explicitly cancels the session's active draft.
func (s *DefaultBookingService) CancelDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Drafts.TransitionStatus(ctx, draft.ID, models.StatusCancelled)
}

// validatePatch rejects malformed step input before it touches the store.
func validatePatch(patch models.DraftPatch) error {
	if patch.Bedrooms != nil && *patch.Bedrooms < 0 {
		return utils.NewValidationError("bedrooms must not be negative, got %d", *patch.Bedrooms)
	}
	if patch.Bathrooms != nil && *patch.Bathrooms < 0 {
		return utils.NewValidationError("bathrooms must not be negative, got %d", *patch.Bathrooms)
	}
	if patch.Extras != nil {
		for _, sel := range *patch.Extras {
			if sel.ExtraID == "" {
				return utils.NewValidationError("extra id must not be empty")
			}
			if sel.Quantity < 1 {
				return utils.NewValidationError("extra %q quantity must be at least 1, got %d", sel.ExtraID, sel.Quantity)
			}
		}
	}
	if patch.Date != nil {
		if _, err := time.Parse("2006-01-02", *patch.Date); err != nil {
			return utils.NewValidationError("date must be YYYY-MM-DD, got %q", *patch.Date)
		}
	}
	if patch.StartTime != nil {
		if _, err := time.Parse("15:04", *patch.StartTime); err != nil {
			return utils.NewValidationError("start time must be HH:MM, got %q", *patch.StartTime)
		}
	}
	if patch.Frequency != nil && *patch.Frequency != "" {
		switch *patch.Frequency {
		case models.FrequencyOneTime, models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly:
		default:
			return utils.NewValidationError("unknown frequency %q", *patch.Frequency)
		}
	}
	return nil
}
