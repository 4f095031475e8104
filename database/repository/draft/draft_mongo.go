package draftRepo

import (
	"context"
	"fmt"
	"time"

	"sweeply/database"
	"sweeply/models"
	"sweeply/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nonTerminal matches drafts that can still change.
var nonTerminal = bson.M{"$in": []string{models.StatusDraft, models.StatusPendingPayment}}

// allowedPrev lists the statuses a draft may transition from, per target.
var allowedPrev = map[string][]string{
	models.StatusPendingPayment: {models.StatusDraft},
	models.StatusConfirmed:      {models.StatusPendingPayment},
	models.StatusCancelled:      {models.StatusDraft, models.StatusPendingPayment},
}

// MongoDraftRepo implements DraftRepository using MongoDB.
type MongoDraftRepo struct {
	coll *mongo.Collection
}

// NewMongoDraftRepo creates a new instance of DraftRepository using MongoDB.
func NewMongoDraftRepo() DraftRepository {
	coll := database.DB().Collection("booking_drafts")
	repo := &MongoDraftRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// draftIndexModels defines the draft indexes. The partial unique index on
// session_token is what guarantees at most one non-terminal draft per
// session: concurrent creates race in Mongo, and the loser converts to an
// update.
func draftIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "session_token", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": nonTerminal}),
		},
		{Keys: bson.D{{Key: "payment_ref", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "updated_at", Value: 1}}},
	}
}

func (r *MongoDraftRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, draftIndexModels())
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert merges the patch into the session's active draft with a single
// atomic FindOneAndUpdate, creating the draft when absent.
func (r *MongoDraftRepo) Upsert(ctx context.Context, sessionToken string, patch models.DraftPatch) (*models.BookingDraft, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"session_token": sessionToken, "status": nonTerminal}
	update := bson.M{
		"$set": patchSet(patch, now),
		"$setOnInsert": bson.M{
			"id":         uuid.New().String(),
			"status":     models.StatusDraft,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var draft models.BookingDraft
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&draft)
	if mongo.IsDuplicateKeyError(err) {
		// Two first-touch requests for the same session raced; the unique
		// index rejected the second insert. Re-running the same call now
		// matches the winner's document and applies as an update.
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&draft)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert draft for session: %w", err)
	}
	return &draft, nil
}

// patchSet builds the $set document from the non-nil patch fields.
func patchSet(patch models.DraftPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if patch.CustomerID != nil {
		set["customer_id"] = *patch.CustomerID
	}
	if patch.CustomerEmail != nil {
		set["customer_email"] = *patch.CustomerEmail
	}
	if patch.ServiceID != nil {
		set["service_id"] = *patch.ServiceID
	}
	if patch.Bedrooms != nil {
		set["bedrooms"] = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		set["bathrooms"] = *patch.Bathrooms
	}
	if patch.Extras != nil {
		set["extras"] = *patch.Extras
	}
	if patch.SuburbID != nil {
		set["suburb_id"] = *patch.SuburbID
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.StartTime != nil {
		set["start_time"] = *patch.StartTime
	}
	if patch.Frequency != nil {
		set["frequency"] = *patch.Frequency
	}
	if patch.SpecialInstructions != nil {
		set["special_instructions"] = *patch.SpecialInstructions
	}
	if patch.TotalPrice != nil {
		set["total_price"] = *patch.TotalPrice
	}
	if patch.AutoAssign != nil {
		set["auto_assign"] = *patch.AutoAssign
	}
	return set
}

// GetBySession retrieves the session's active (non-terminal) draft.
func (r *MongoDraftRepo) GetBySession(ctx context.Context, sessionToken string) (*models.BookingDraft, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var draft models.BookingDraft
	err := r.coll.FindOne(ctx, bson.M{"session_token": sessionToken, "status": nonTerminal}).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		return nil, &utils.NotFoundError{Entity: "draft", ID: sessionToken}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft for session: %w", err)
	}
	return &draft, nil
}

// GetByID retrieves a draft by its unique ID.
func (r *MongoDraftRepo) GetByID(ctx context.Context, id string) (*models.BookingDraft, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var draft models.BookingDraft
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		return nil, &utils.NotFoundError{Entity: "booking", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft %s: %w", id, err)
	}
	return &draft, nil
}

// GetByPaymentRef retrieves a draft by its stored gateway reference.
func (r *MongoDraftRepo) GetByPaymentRef(ctx context.Context, reference string) (*models.BookingDraft, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var draft models.BookingDraft
	err := r.coll.FindOne(ctx, bson.M{"payment_ref": reference}).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		return nil, &utils.NotFoundError{Entity: "payment reference", ID: reference}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft by reference: %w", err)
	}
	return &draft, nil
}

// TransitionStatus moves a draft along DRAFT -> PENDING_PAYMENT -> CONFIRMED,
// or any non-terminal status -> CANCELLED. The allowed-predecessor filter
// makes the update conditional, so a lost race or invalid call leaves the
// record unchanged and reports a StateError.
func (r *MongoDraftRepo) TransitionStatus(ctx context.Context, draftID, target string) (*models.BookingDraft, error) {
	prev, ok := allowedPrev[target]
	if !ok {
		return nil, utils.NewValidationError("unknown target status %q", target)
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": draftID, "status": bson.M{"$in": prev}}
	update := bson.M{"$set": bson.M{"status": target, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var draft models.BookingDraft
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		// Distinguish a missing draft from one in the wrong state.
		current, getErr := r.GetByID(ctx, draftID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, &utils.StateError{From: current.Status, To: target}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to transition draft %s to %s: %w", draftID, target, err)
	}
	return &draft, nil
}

// SetPaymentRef stores the gateway reference on a draft.
func (r *MongoDraftRepo) SetPaymentRef(ctx context.Context, draftID, reference string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": draftID},
		bson.M{"$set": bson.M{"payment_ref": reference, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set payment reference on draft %s: %w", draftID, err)
	}
	if result.MatchedCount == 0 {
		return &utils.NotFoundError{Entity: "booking", ID: draftID}
	}
	return nil
}

// SweepAbandoned cancels DRAFT records not touched since the cutoff.
// PENDING_PAYMENT records are never swept: they may still complete and keep
// an auditable trail either way.
func (r *MongoDraftRepo) SweepAbandoned(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	result, err := r.coll.UpdateMany(ctx,
		bson.M{"status": models.StatusDraft, "updated_at": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{"status": models.StatusCancelled, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep abandoned drafts: %w", err)
	}
	return result.ModifiedCount, nil
}
