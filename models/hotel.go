package models

import "time"

// Hotel is a resort/hotel record used as a transfer destination.
type Hotel struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Brand       string    `bson:"brand,omitempty" json:"brand,omitempty"`
	Zone        string    `bson:"zone" json:"zone"`                                // pricing zone, e.g. "Bavaro / Punta Cana"
	SearchTerms []string  `bson:"search_terms,omitempty" json:"searchTerms,omitempty"` // synonyms the widget should recognize
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Zone is a named geographic pricing area, distinct from a specific hotel.
type Zone struct {
	Name       string  `bson:"name" json:"name"`
	Airport    string  `bson:"airport" json:"airport"` // nearest airport code
	DistanceKm float64 `bson:"distance_km" json:"distanceKm"`
}
