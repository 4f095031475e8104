package draftRepo

import (
	"context"
	"time"

	"sweeply/models"
)

// DraftRepository defines data access for booking drafts. The one active
// draft per session invariant is enforced here by the persistence layer
// (partial unique index + atomic upsert), never by application locking:
// requests for the same session may land on any server instance.
type DraftRepository interface {
	// Upsert merges the patch into the session's active draft, creating one
	// when absent, and returns the resulting draft.
	Upsert(ctx context.Context, sessionToken string, patch models.DraftPatch) (*models.BookingDraft, error)
	// GetBySession retrieves the session's active (non-terminal) draft.
	GetBySession(ctx context.Context, sessionToken string) (*models.BookingDraft, error)
	// GetByID retrieves a draft by its unique ID.
	GetByID(ctx context.Context, id string) (*models.BookingDraft, error)
	// GetByPaymentRef retrieves a draft by its stored gateway reference.
	GetByPaymentRef(ctx context.Context, reference string) (*models.BookingDraft, error)
	// TransitionStatus moves a draft along the allowed status edges. An
	// invalid transition returns a StateError and leaves the record unchanged.
	TransitionStatus(ctx context.Context, draftID, target string) (*models.BookingDraft, error)
	// SetPaymentRef stores the gateway reference on a draft.
	SetPaymentRef(ctx context.Context, draftID, reference string) error
	// WriteAssignment writes a cleaner assignment onto a booking record,
	// walking the versioned schema shapes.
	WriteAssignment(ctx context.Context, bookingID, cleanerID string, autoAssigned bool) error
	// SweepAbandoned cancels DRAFT records not touched since the cutoff and
	// returns how many were swept.
	SweepAbandoned(ctx context.Context, cutoff time.Time) (int64, error)
}
