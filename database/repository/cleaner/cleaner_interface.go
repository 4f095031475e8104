package cleanerRepo

import (
	"context"
	"time"

	"sweeply/models"
)

// AvailabilityQuery narrows the cleaner search to a suburb, a service
// capability and a time window on a given date.
type AvailabilityQuery struct {
	SuburbID    string
	ServiceID   string
	Date        time.Time
	StartMinute int
	EndMinute   int
	Limit       int
}

// CleanerRepository defines data access for cleaners.
type CleanerRepository interface {
	// GetByID retrieves an active cleaner by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Cleaner, error)
	// FindAvailable retrieves active cleaners serving the suburb and service
	// whose weekly windows cover the requested slot, ordered by rating
	// descending.
	FindAvailable(ctx context.Context, q AvailabilityQuery) ([]models.Cleaner, error)
}
