package booking

import (
	"context"

	catalogRepo "sweeply/database/repository/catalog"
	cleanerRepo "sweeply/database/repository/cleaner"
	draftRepo "sweeply/database/repository/draft"
	"sweeply/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingService manages the booking draft lifecycle: quoting, incremental
// draft updates, availability and cleaner assignment.
type BookingService interface {
	CalculateQuote(ctx context.Context, req models.QuoteRequest) (*models.PriceQuote, error)
	UpsertDraft(ctx context.Context, sessionID string, patch models.DraftPatch) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	CancelDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	AssignCleaner(ctx context.Context, req models.AssignmentRequest) (*models.AssignmentResult, error)
	CheckAvailability(ctx context.Context, suburbID, date string) ([]models.AvailabilitySlot, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Drafts       draftRepo.DraftRepository
	Cleaners     cleanerRepo.CleanerRepository
	Catalog      catalogRepo.CatalogRepository
	Availability AvailabilitySource
	CacheClient  *redis.Client // optional; nil disables quote/availability caching
	Logger       *zap.Logger
}

var _ BookingService = (*DefaultBookingService)(nil)
