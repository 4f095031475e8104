package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cleanerRepo "sweeply/database/repository/cleaner"
	"sweeply/models"
	"sweeply/utils"
)

const availabilityCacheTTL = 60 * time.Second

// AvailabilitySource answers which start times are bookable in a suburb on a
// date. Two implementations exist: the repo-backed one and a fixed mock for
// environments without cleaner data. The choice is made once at startup via
// configuration.
type AvailabilitySource interface {
	Slots(ctx context.Context, suburbID, date string) ([]models.AvailabilitySlot, error)
}

// slotStarts is the bookable grid: hourly from 08:00 to 16:00.
var slotStarts = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
}

// CheckAvailability validates input, consults the configured source and
// caches the answer briefly.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, suburbID, date string) ([]models.AvailabilitySlot, error) {
	if suburbID == "" {
		return nil, utils.NewValidationError("suburb_id is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, utils.NewValidationError("date must be YYYY-MM-DD, got %q", date)
	}

	cacheKey := fmt.Sprintf("availability:%s:%s", suburbID, date)
	if s.CacheClient != nil {
		if data, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil {
			var slots []models.AvailabilitySlot
			if json.Unmarshal([]byte(data), &slots) == nil {
				return slots, nil
			}
		}
	}

	slots, err := s.Availability.Slots(ctx, suburbID, date)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(slots); err == nil {
			s.CacheClient.Set(ctx, cacheKey, data, availabilityCacheTTL)
		}
	}
	return slots, nil
}

// RepoAvailabilitySource derives slot availability from cleaner windows.
type RepoAvailabilitySource struct {
	Cleaners cleanerRepo.CleanerRepository
}

// Slots marks a start time available when at least one active cleaner in the
// suburb has a window covering it.
func (src *RepoAvailabilitySource) Slots(ctx context.Context, suburbID, date string) ([]models.AvailabilitySlot, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, utils.NewValidationError("date must be YYYY-MM-DD, got %q", date)
	}

	slots := make([]models.AvailabilitySlot, 0, len(slotStarts))
	for _, start := range slotStarts {
		t, _ := time.Parse("15:04", start)
		startMinute := t.Hour()*60 + t.Minute()

		cleaners, err := src.Cleaners.FindAvailable(ctx, cleanerRepo.AvailabilityQuery{
			SuburbID:    suburbID,
			Date:        day,
			StartMinute: startMinute,
			EndMinute:   startMinute + defaultJobMinutes,
			Limit:       1,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to check slot %s: %w", start, err)
		}
		slots = append(slots, models.AvailabilitySlot{Time: start, Available: len(cleaners) > 0})
	}
	return slots, nil
}

// MockAvailabilitySource returns a fixed slot list.
type MockAvailabilitySource struct{}

func (src *MockAvailabilitySource) Slots(ctx context.Context, suburbID, date string) ([]models.AvailabilitySlot, error) {
	return []models.AvailabilitySlot{
		{Time: "08:00", Available: true},
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: false},
		{Time: "11:00", Available: true},
		{Time: "12:00", Available: true},
		{Time: "13:00", Available: false},
		{Time: "14:00", Available: true},
		{Time: "15:00", Available: true},
		{Time: "16:00", Available: true},
	}, nil
}
