package models

import "time"

// Draft statuses. DRAFT and PENDING_PAYMENT are non-terminal; CONFIRMED and
// CANCELLED are terminal.
const (
	StatusDraft          = "DRAFT"
	StatusPendingPayment = "PENDING_PAYMENT"
	StatusConfirmed      = "CONFIRMED"
	StatusCancelled      = "CANCELLED"
)

// Booking frequencies, used by the frequency-discount lookup.
const (
	FrequencyOneTime  = "one_time"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// ExtraSelection records one selected add-on and how many of it.
type ExtraSelection struct {
	ExtraID  string `bson:"extra_id" json:"extraId"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// BookingDraft is the single in-progress booking record for a browser
// session. It is mutated incrementally as the customer walks through the
// steps (service, rooms/extras, location/date, review) and carries the
// booking through payment into confirmation.
type BookingDraft struct {
	ID                  string           `bson:"id" json:"id"`
	SessionToken        string           `bson:"session_token" json:"-"`
	CustomerID          string           `bson:"customer_id,omitempty" json:"customerId,omitempty"`
	CustomerEmail       string           `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	ServiceID           string           `bson:"service_id,omitempty" json:"serviceId,omitempty"`
	Bedrooms            int              `bson:"bedrooms" json:"bedrooms"`
	Bathrooms           int              `bson:"bathrooms" json:"bathrooms"`
	Extras              []ExtraSelection `bson:"extras,omitempty" json:"extras,omitempty"`
	SuburbID            string           `bson:"suburb_id,omitempty" json:"suburbId,omitempty"`
	Date                string           `bson:"date,omitempty" json:"date,omitempty"` // "2006-01-02"
	StartTime           string           `bson:"start_time,omitempty" json:"startTime,omitempty"`
	Frequency           string           `bson:"frequency,omitempty" json:"frequency,omitempty"`
	SpecialInstructions string           `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	TotalPrice          float64          `bson:"total_price" json:"totalPrice"`
	Status              string           `bson:"status" json:"status"`
	CleanerID           string           `bson:"cleaner_id,omitempty" json:"cleanerId,omitempty"`
	AutoAssign          bool             `bson:"auto_assign" json:"autoAssign"`
	PaymentRef          string           `bson:"payment_ref,omitempty" json:"paymentRef,omitempty"`
	CreatedAt           time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time        `bson:"updated_at" json:"updatedAt"`
}

// IsTerminal reports whether the draft can no longer change.
func (d *BookingDraft) IsTerminal() bool {
	return d.Status == StatusConfirmed || d.Status == StatusCancelled
}

// DraftPatch carries the fields a single booking step may change. Nil
// pointers leave the stored draft untouched.
type DraftPatch struct {
	CustomerID          *string           `json:"customerId,omitempty"`
	CustomerEmail       *string           `json:"customerEmail,omitempty"`
	ServiceID           *string           `json:"serviceId,omitempty"`
	Bedrooms            *int              `json:"bedrooms,omitempty"`
	Bathrooms           *int              `json:"bathrooms,omitempty"`
	Extras              *[]ExtraSelection `json:"extras,omitempty"`
	SuburbID            *string           `json:"suburbId,omitempty"`
	Date                *string           `json:"date,omitempty"`
	StartTime           *string           `json:"startTime,omitempty"`
	Frequency           *string           `json:"frequency,omitempty"`
	SpecialInstructions *string           `json:"specialInstructions,omitempty"`
	TotalPrice          *float64          `json:"totalPrice,omitempty"`
	AutoAssign          *bool             `json:"autoAssign,omitempty"`
}
