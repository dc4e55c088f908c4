package catalog

import (
	"context"
	"sync"

	catalogRepo "tropicab/database/repository/catalog"
	"tropicab/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service exposes the transfer reference data the agent and the admin
// console work against. Reads serve from an in-memory snapshot; writes go to
// the repository and refresh the snapshot.
type Service interface {
	Hotels() []models.Hotel
	Zones() []models.Zone
	Vehicles() []models.VehicleType
	Rule(airport, zone, vehicle string) *models.PricingRule
	DiscountPct() float64
	Refresh(ctx context.Context) error

	SaveHotel(ctx context.Context, h models.Hotel) (string, error)
	DeleteHotel(ctx context.Context, id string) error
	SaveVehicleType(ctx context.Context, v models.VehicleType) (string, error)
	SavePricingRule(ctx context.Context, r models.PricingRule) (string, error)
	DeletePricingRule(ctx context.Context, id string) error
	SetDiscount(ctx context.Context, d models.DiscountSetting) error
}

// DefaultCatalogService implements Service over the Mongo repository with a
// Redis-cached snapshot.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Cache  *redis.Client
	Logger *zap.Logger

	mu   sync.RWMutex
	snap snapshot
}

// snapshot is the immutable in-memory view served between refreshes.
type snapshot struct {
	Hotels      []models.Hotel               `json:"hotels"`
	Zones       []models.Zone                `json:"zones"`
	Vehicles    []models.VehicleType         `json:"vehicles"`
	Rules       map[string]models.PricingRule `json:"rules"` // keyed airport|zone|vehicle
	DiscountPct float64                      `json:"discountPct"`
}
