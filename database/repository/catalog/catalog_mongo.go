package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"sweeply/database"
	"sweeply/models"
	"sweeply/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	categories *mongo.Collection
	services   *mongo.Collection
	extras     *mongo.Collection
	regions    *mongo.Collection
	suburbs    *mongo.Collection
	leads      *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		categories: db.Collection("service_categories"),
		services:   db.Collection("services"),
		extras:     db.Collection("extras"),
		regions:    db.Collection("regions"),
		suburbs:    db.Collection("suburbs"),
		leads:      db.Collection("leads"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	unique := func(key string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	if _, err := r.services.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("id"),
		unique("slug"),
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.suburbs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("id"),
		{Keys: bson.D{{Key: "region_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create suburb indexes: %w", err)
	}
	for _, coll := range []*mongo.Collection{r.categories, r.extras, r.regions} {
		if _, err := coll.Indexes().CreateOne(ctx, unique("id")); err != nil {
			return fmt.Errorf("failed to create %s index: %w", coll.Name(), err)
		}
	}
	return nil
}

// GetServiceByID retrieves an active service by its unique ID.
func (r *MongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, &utils.NotFoundError{Entity: "service", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// GetCategoriesWithServices retrieves active categories with their nested
// active services and the shared extras list, ordered by sort order.
func (r *MongoCatalogRepo) GetCategoriesWithServices(ctx context.Context) ([]models.CategoryWithServices, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	sortOpt := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})

	cur, err := r.categories.Find(ctx, bson.M{"active": true}, sortOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	var categories []models.ServiceCategory
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	cur, err = r.services.Find(ctx, bson.M{"active": true}, sortOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	var services []models.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	cur, err = r.extras.Find(ctx, bson.M{"active": true}, sortOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch extras: %w", err)
	}
	var extras []models.Extra
	if err := cur.All(ctx, &extras); err != nil {
		return nil, fmt.Errorf("failed to decode extras: %w", err)
	}

	byCategory := make(map[string][]models.Service, len(categories))
	for _, svc := range services {
		byCategory[svc.CategoryID] = append(byCategory[svc.CategoryID], svc)
	}

	result := make([]models.CategoryWithServices, 0, len(categories))
	for _, cat := range categories {
		result = append(result, models.CategoryWithServices{
			Category: cat,
			Services: byCategory[cat.ID],
			Extras:   extras,
		})
	}
	return result, nil
}

// GetExtrasByIDs retrieves active extras for the given ids.
func (r *MongoCatalogRepo) GetExtrasByIDs(ctx context.Context, ids []string) ([]models.Extra, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.extras.Find(ctx, bson.M{"id": bson.M{"$in": ids}, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch extras: %w", err)
	}
	var extras []models.Extra
	if err := cur.All(ctx, &extras); err != nil {
		return nil, fmt.Errorf("failed to decode extras: %w", err)
	}
	return extras, nil
}

// GetRegions retrieves all active regions.
func (r *MongoCatalogRepo) GetRegions(ctx context.Context) ([]models.Region, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.regions.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch regions: %w", err)
	}
	var regions []models.Region
	if err := cur.All(ctx, &regions); err != nil {
		return nil, fmt.Errorf("failed to decode regions: %w", err)
	}
	return regions, nil
}

// GetSuburbsByRegion retrieves active suburbs belonging to a region.
func (r *MongoCatalogRepo) GetSuburbsByRegion(ctx context.Context, regionID string) ([]models.Suburb, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.suburbs.Find(ctx,
		bson.M{"region_id": regionID, "active": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suburbs for region %s: %w", regionID, err)
	}
	var suburbs []models.Suburb
	if err := cur.All(ctx, &suburbs); err != nil {
		return nil, fmt.Errorf("failed to decode suburbs: %w", err)
	}
	return suburbs, nil
}

// GetSuburbByID retrieves an active suburb by its unique ID.
func (r *MongoCatalogRepo) GetSuburbByID(ctx context.Context, id string) (*models.Suburb, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var suburb models.Suburb
	err := r.suburbs.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&suburb)
	if err == mongo.ErrNoDocuments {
		return nil, &utils.NotFoundError{Entity: "suburb", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suburb %s: %w", id, err)
	}
	return &suburb, nil
}

// CreateLead stores a marketing-funnel quote submission.
func (r *MongoCatalogRepo) CreateLead(ctx context.Context, lead *models.Lead) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.leads.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}
