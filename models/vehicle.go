package models

import "time"

// VehicleType describes a vehicle class offered for transfers.
type VehicleType struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"` // e.g. "Sedan", "Minivan"
	Capacity      int       `bson:"capacity" json:"capacity"`
	Luggage       int       `bson:"luggage" json:"luggage"`
	FallbackBase  float64   `bson:"fallback_base" json:"fallbackBase"`   // USD, used when no pricing rule matches
	FallbackPerKm float64   `bson:"fallback_per_km" json:"fallbackPerKm"`
	ImagePublicID string    `bson:"image_public_id,omitempty" json:"imagePublicId,omitempty"` // Cloudinary public ID
	GalleryIDs    []string  `bson:"gallery_ids,omitempty" json:"galleryIds,omitempty"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// VehicleOption is a priced vehicle choice for one route. Derived per request,
// never persisted.
type VehicleOption struct {
	Name           string  `json:"name"`
	Capacity       int     `json:"capacity"`
	Luggage        int     `json:"luggage"`
	PriceOneWay    float64 `json:"priceOneWay"`
	PriceRoundTrip float64 `json:"priceRoundTrip"`
	Recommended    bool    `json:"recommended"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}
