package catalogRepo

import (
	"context"

	"sweeply/models"
)

// CatalogRepository defines read access to the service/location catalog and
// best-effort storage for marketing leads. The catalog is owned by
// administrators and read-only to the booking flow.
type CatalogRepository interface {
	// GetServiceByID retrieves an active service by its unique ID.
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	// GetCategoriesWithServices retrieves active categories with their
	// nested active services and the shared extras list.
	GetCategoriesWithServices(ctx context.Context) ([]models.CategoryWithServices, error)
	// GetExtrasByIDs retrieves active extras for the given ids.
	GetExtrasByIDs(ctx context.Context, ids []string) ([]models.Extra, error)
	// GetRegions retrieves all active regions.
	GetRegions(ctx context.Context) ([]models.Region, error)
	// GetSuburbsByRegion retrieves active suburbs belonging to a region.
	GetSuburbsByRegion(ctx context.Context, regionID string) ([]models.Suburb, error)
	// GetSuburbByID retrieves an active suburb by its unique ID.
	GetSuburbByID(ctx context.Context, id string) (*models.Suburb, error)
	// CreateLead stores a marketing-funnel quote submission.
	CreateLead(ctx context.Context, lead *models.Lead) error
}
