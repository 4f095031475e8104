package models

import "time"

// AvailabilityWindow is a recurring weekly window during which a cleaner
// accepts jobs. Times are minutes from midnight.
type AvailabilityWindow struct {
	Weekday     int `bson:"weekday" json:"weekday"` // 0 = Sunday
	StartMinute int `bson:"start_minute" json:"start_minute"`
	EndMinute   int `bson:"end_minute" json:"end_minute"`
}

// Cleaner is a vetted operator who can be assigned to a booking.
type Cleaner struct {
	ID         string               `bson:"id" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Rating     float64              `bson:"rating" json:"rating"` // 0..5
	Active     bool                 `bson:"active" json:"active"`
	SuburbIDs  []string             `bson:"suburb_ids" json:"suburb_ids"`   // service-area memberships
	ServiceIDs []string             `bson:"service_ids" json:"service_ids"` // service capabilities
	Windows    []AvailabilityWindow `bson:"windows" json:"windows"`
	CreatedAt  time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updated_at"`
}

// AvailabilitySlot is one bookable start time on a given date.
type AvailabilitySlot struct {
	Time      string `json:"time"` // "15:04"
	Available bool   `json:"available"`
}

// AssignmentRequest selects a cleaner for a booking: either an explicit
// cleaner or automatic best-available selection. Exactly one of the two
// should be set.
type AssignmentRequest struct {
	BookingID  string `json:"bookingId" binding:"required"`
	CleanerID  string `json:"cleanerId,omitempty"`
	AutoAssign bool   `json:"autoAssign,omitempty"`
}

// AssignmentResult reports whether an assignment was written. Applied is
// false when auto-assign found no available cleaner; the booking stays
// valid and unassigned.
type AssignmentResult struct {
	OK        bool   `json:"ok"`
	Applied   bool   `json:"applied"`
	CleanerID string `json:"cleanerId,omitempty"`
}
