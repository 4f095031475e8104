package models

import "time"

// ServiceCategory groups related services on the marketing site
// (e.g. "Home Cleaning", "End of Lease").
type ServiceCategory struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Slug      string    `bson:"slug" json:"slug"`
	SortOrder int       `bson:"sort_order" json:"sort_order"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Service is a bookable catalog entry. Pricing fields are owned by
// administrators and read-only to the booking flow.
type Service struct {
	ID             string    `bson:"id" json:"id"`
	CategoryID     string    `bson:"category_id" json:"category_id"`
	Name           string    `bson:"name" json:"name"`
	Slug           string    `bson:"slug" json:"slug"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	BaseFee        float64   `bson:"base_fee" json:"base_fee"`                 // covers the first bedroom and bathroom
	PerBedroom     float64   `bson:"per_bedroom" json:"per_bedroom"`           // increment per bedroom beyond the first
	PerBathroom    float64   `bson:"per_bathroom" json:"per_bathroom"`         // increment per bathroom beyond the first
	ServiceFeeFlat float64   `bson:"service_fee_flat" json:"service_fee_flat"` // flat platform charge
	ServiceFeePct  float64   `bson:"service_fee_pct" json:"service_fee_pct"`   // percentage of subtotal, e.g. 10 for 10%
	SortOrder      int       `bson:"sort_order" json:"sort_order"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Extra is an optional add-on item with its own price (e.g. "Oven clean").
type Extra struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	SortOrder int       `bson:"sort_order" json:"sort_order"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Region is a top-level serviceable area containing suburbs.
type Region struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Slug   string `bson:"slug" json:"slug"`
	Active bool   `bson:"active" json:"active"`
}

// Suburb is the lowest-level serviceable location unit. Its delivery fee
// is added onto quotes for bookings in that suburb.
type Suburb struct {
	ID          string  `bson:"id" json:"id"`
	RegionID    string  `bson:"region_id" json:"region_id"`
	Name        string  `bson:"name" json:"name"`
	Postcode    string  `bson:"postcode" json:"postcode"`
	DeliveryFee float64 `bson:"delivery_fee" json:"delivery_fee"`
	Active      bool    `bson:"active" json:"active"`
}

// CategoryWithServices is the nested shape returned by the services catalog
// endpoint: a category, its active services and the shared extras list.
type CategoryWithServices struct {
	Category ServiceCategory `json:"category"`
	Services []Service       `json:"services"`
	Extras   []Extra         `json:"extras"`
}
