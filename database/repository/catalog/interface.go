package catalogRepo

import (
	"context"

	"tropicab/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository manages the transfer reference data: hotels, zones,
// vehicle types, pricing rules, and the global discount setting.
type CatalogRepository interface {
	// Bulk fetches used to build the in-memory snapshot at startup.
	AllHotels(ctx context.Context) ([]models.Hotel, error)
	AllZones(ctx context.Context) ([]models.Zone, error)
	AllVehicleTypes(ctx context.Context) ([]models.VehicleType, error)
	AllPricingRules(ctx context.Context) ([]models.PricingRule, error)
	ActiveDiscount(ctx context.Context) (*models.DiscountSetting, error)

	// Admin CRUD.
	UpsertHotel(ctx context.Context, h models.Hotel) (string, error)
	DeleteHotel(ctx context.Context, id string) error
	UpsertVehicleType(ctx context.Context, v models.VehicleType) (string, error)
	UpsertPricingRule(ctx context.Context, r models.PricingRule) (string, error)
	DeletePricingRule(ctx context.Context, id string) error
	SetDiscount(ctx context.Context, d models.DiscountSetting) error
}

type mongoCatalogRepo struct {
	hotels    *mongo.Collection
	zones     *mongo.Collection
	vehicles  *mongo.Collection
	rules     *mongo.Collection
	settings  *mongo.Collection
}
