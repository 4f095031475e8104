package booking

import (
	"context"
	"time"

	cleanerRepo "sweeply/database/repository/cleaner"
	"sweeply/models"
	"sweeply/utils"

	"go.uber.org/zap"
)

const (
	// defaultJobMinutes is the window a cleaner must have free from the
	// booked start time.
	defaultJobMinutes = 180
	// autoAssignLimit caps the availability query.
	autoAssignLimit = 10
)

// AssignCleaner applies an explicit or automatic cleaner selection to a
// booking. Auto-assign picks the highest-rated available cleaner; finding
// none is a soft failure: the booking stays valid and unassigned.
func (s *DefaultBookingService) AssignCleaner(ctx context.Context, req models.AssignmentRequest) (*models.AssignmentResult, error) {
	if req.CleanerID == "" && !req.AutoAssign {
		return nil, utils.NewValidationError("either cleanerId or autoAssign must be set")
	}
	if req.CleanerID != "" && req.AutoAssign {
		return nil, utils.NewValidationError("cleanerId and autoAssign are mutually exclusive")
	}

	booking, err := s.Drafts.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if req.CleanerID != "" {
		if _, err := s.Cleaners.GetByID(ctx, req.CleanerID); err != nil {
			return nil, err
		}
		if err := s.Drafts.WriteAssignment(ctx, booking.ID, req.CleanerID, false); err != nil {
			return nil, err
		}
		return &models.AssignmentResult{OK: true, Applied: true, CleanerID: req.CleanerID}, nil
	}

	query, err := availabilityQueryFor(booking)
	if err != nil {
		return nil, err
	}
	candidates, err := s.Cleaners.FindAvailable(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		s.Logger.Info("auto-assign found no available cleaner",
			zap.String("bookingID", booking.ID),
			zap.String("suburbID", booking.SuburbID),
		)
		return &models.AssignmentResult{OK: true, Applied: false}, nil
	}

	// Candidates arrive rating-descending with a stable tie order.
	best := candidates[0]
	if err := s.Drafts.WriteAssignment(ctx, booking.ID, best.ID, true); err != nil {
		return nil, err
	}
	return &models.AssignmentResult{OK: true, Applied: true, CleanerID: best.ID}, nil
}

// availabilityQueryFor derives the cleaner search window from the booking's
// scheduled date and start time.
func availabilityQueryFor(booking *models.BookingDraft) (cleanerRepo.AvailabilityQuery, error) {
	if booking.SuburbID == "" || booking.Date == "" || booking.StartTime == "" {
		return cleanerRepo.AvailabilityQuery{}, utils.NewValidationError(
			"booking %s needs a suburb, date and start time before a cleaner can be auto-assigned", booking.ID)
	}
	date, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		return cleanerRepo.AvailabilityQuery{}, utils.NewValidationError("booking %s has a malformed date %q", booking.ID, booking.Date)
	}
	start, err := time.Parse("15:04", booking.StartTime)
	if err != nil {
		return cleanerRepo.AvailabilityQuery{}, utils.NewValidationError("booking %s has a malformed start time %q", booking.ID, booking.StartTime)
	}
	startMinute := start.Hour()*60 + start.Minute()

	return cleanerRepo.AvailabilityQuery{
		SuburbID:    booking.SuburbID,
		ServiceID:   booking.ServiceID,
		Date:        date,
		StartMinute: startMinute,
		EndMinute:   startMinute + defaultJobMinutes,
		Limit:       autoAssignLimit,
	}, nil
}
