package models

import "time"

// PricingRule is an authoritative price for (airport, zone, vehicle).
type PricingRule struct {
	ID        string    `bson:"id" json:"id"`
	Airport   string    `bson:"airport" json:"airport"` // origin airport code
	Zone      string    `bson:"zone" json:"zone"`       // destination zone name
	Vehicle   string    `bson:"vehicle" json:"vehicle"` // vehicle type name
	Price     float64   `bson:"price" json:"price"`     // one-way, USD
	Currency  string    `bson:"currency" json:"currency"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DiscountSetting holds the single global discount applied at quote time.
// At most one setting is active at a time.
type DiscountSetting struct {
	ID        string    `bson:"id" json:"id"`
	Pct       float64   `bson:"pct" json:"pct"` // e.g. 10 means 10% off
	Label     string    `bson:"label,omitempty" json:"label,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Price source tags recorded on quotes and booking actions.
const (
	PriceSourceStandard   = "standard"    // from a pricing rule
	PriceSourceEstimated  = "estimated"   // distance-based fallback formula
	PriceSourcePriceMatch = "price_match" // accepted competitor price
	PriceSourceCustom     = "custom"      // manual override
)
