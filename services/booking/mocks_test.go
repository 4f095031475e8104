package booking

import (
	"context"
	"time"

	cleanerRepo "sweeply/database/repository/cleaner"
	"sweeply/models"

	"github.com/stretchr/testify/mock"
)

type MockDraftRepo struct{ mock.Mock }

func (m *MockDraftRepo) Upsert(ctx context.Context, sessionToken string, patch models.DraftPatch) (*models.BookingDraft, error) {
	args := m.Called(ctx, sessionToken, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *MockDraftRepo) GetBySession(ctx context.Context, sessionToken string) (*models.BookingDraft, error) {
	args := m.Called(ctx, sessionToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *MockDraftRepo) GetByID(ctx context.Context, id string) (*models.BookingDraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *MockDraftRepo) GetByPaymentRef(ctx context.Context, reference string) (*models.BookingDraft, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *MockDraftRepo) TransitionStatus(ctx context.Context, draftID, target string) (*models.BookingDraft, error) {
	args := m.Called(ctx, draftID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDraft), args.Error(1)
}

func (m *MockDraftRepo) SetPaymentRef(ctx context.Context, draftID, reference string) error {
	return m.Called(ctx, draftID, reference).Error(0)
}

func (m *MockDraftRepo) WriteAssignment(ctx context.Context, bookingID, cleanerID string, autoAssigned bool) error {
	return m.Called(ctx, bookingID, cleanerID, autoAssigned).Error(0)
}

func (m *MockDraftRepo) SweepAbandoned(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockCleanerRepo struct{ mock.Mock }

func (m *MockCleanerRepo) GetByID(ctx context.Context, id string) (*models.Cleaner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cleaner), args.Error(1)
}

func (m *MockCleanerRepo) FindAvailable(ctx context.Context, q cleanerRepo.AvailabilityQuery) ([]models.Cleaner, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cleaner), args.Error(1)
}

type MockCatalogRepo struct{ mock.Mock }

func (m *MockCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockCatalogRepo) GetCategoriesWithServices(ctx context.Context) ([]models.CategoryWithServices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryWithServices), args.Error(1)
}

func (m *MockCatalogRepo) GetExtrasByIDs(ctx context.Context, ids []string) ([]models.Extra, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Extra), args.Error(1)
}

func (m *MockCatalogRepo) GetRegions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Region), args.Error(1)
}

func (m *MockCatalogRepo) GetSuburbsByRegion(ctx context.Context, regionID string) ([]models.Suburb, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suburb), args.Error(1)
}

func (m *MockCatalogRepo) GetSuburbByID(ctx context.Context, id string) (*models.Suburb, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suburb), args.Error(1)
}

func (m *MockCatalogRepo) CreateLead(ctx context.Context, lead *models.Lead) error {
	return m.Called(ctx, lead).Error(0)
}
