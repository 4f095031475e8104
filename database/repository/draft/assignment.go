package draftRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sweeply/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// The booking collection's assignment fields have changed layout across
// migrations and some deployments still enforce the old validator. Rather
// than probing with try/catch, each known layout is an explicit tagged
// shape; the write walks them newest first and stops at the first the live
// schema accepts. A validator rejection moves to the next shape, any other
// error is fatal.
type assignmentShape struct {
	version string
	update  func(cleanerID string, autoAssigned bool, now time.Time) bson.M
}

var assignmentShapes = []assignmentShape{
	{
		version: "v2",
		update: func(cleanerID string, autoAssigned bool, now time.Time) bson.M {
			return bson.M{"$set": bson.M{
				"cleaner_id":  cleanerID,
				"auto_assign": autoAssigned,
				"assigned_at": now,
				"updated_at":  now,
			}}
		},
	},
	{
		version: "v1",
		update: func(cleanerID string, autoAssigned bool, now time.Time) bson.M {
			return bson.M{"$set": bson.M{
				"assigned_cleaner": cleanerID,
				"updated_at":       now,
			}}
		},
	},
}

// documentValidationFailure is the Mongo server code for a write rejected by
// a collection validator.
const documentValidationFailure = 121

func isSchemaRejection(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == documentValidationFailure {
				return true
			}
		}
	}
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == documentValidationFailure
}

// WriteAssignment writes a cleaner assignment onto a booking record, walking
// the versioned schema shapes.
func (r *MongoDraftRepo) WriteAssignment(ctx context.Context, bookingID, cleanerID string, autoAssigned bool) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": bookingID}

	var lastErr error
	for _, shape := range assignmentShapes {
		result, err := r.coll.UpdateOne(ctx, filter, shape.update(cleanerID, autoAssigned, now))
		if err == nil {
			if result.MatchedCount == 0 {
				return &utils.NotFoundError{Entity: "booking", ID: bookingID}
			}
			return nil
		}
		if !isSchemaRejection(err) {
			return fmt.Errorf("failed to write assignment for booking %s: %w", bookingID, err)
		}
		lastErr = err
	}
	return fmt.Errorf("no assignment shape accepted for booking %s: %w", bookingID, lastErr)
}
