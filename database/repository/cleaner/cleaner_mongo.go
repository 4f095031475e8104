package cleanerRepo

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

// MongoCleanerRepo implements CleanerRepository using MongoDB.
type MongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo creates a new instance of CleanerRepository using MongoDB.
func NewMongoCleanerRepo() CleanerRepository {
	coll := database.DB().Collection("cleaners")
	repo := &MongoCleanerRepo{coll: coll}

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
func (r *MongoCleanerRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "suburb_ids", Value: 1}, {Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an active cleaner by its unique ID.
func (r *MongoCleanerRepo) GetByID(ctx context.Context, id string) (*models.Cleaner, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var cleaner models.Cleaner
	err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&cleaner)
	if err == mongo.ErrNoDocuments {
		return nil, &utils.NotFoundError{Entity: "cleaner", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cleaner %s: %w", id, err)
	}
	return &cleaner, nil
}

// FindAvailable retrieves active cleaners serving the suburb and service
// whose weekly windows cover the requested slot, ordered by rating
// descending. The secondary sort on id keeps tie order stable across calls.
func (r *MongoCleanerRepo) FindAvailable(ctx context.Context, q AvailabilityQuery) ([]models.Cleaner, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	weekday := int(q.Date.Weekday())
	filter := bson.M{
		"active":     true,
		"suburb_ids": q.SuburbID,
		"windows": bson.M{"$elemMatch": bson.M{
			"weekday":      weekday,
			"start_minute": bson.M{"$lte": q.StartMinute},
			"end_minute":   bson.M{"$gte": q.EndMinute},
		}},
	}
	if q.ServiceID != "" {
		filter["service_ids"] = q.ServiceID
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "id", Value: 1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query available cleaners: %w", err)
	}
	var cleaners []models.Cleaner
	if err := cur.All(ctx, &cleaners); err != nil {
		return nil, fmt.Errorf("failed to decode cleaners: %w", err)
	}
	return cleaners, nil
}
