package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tropicab/models"

	"go.uber.org/zap"
)

const snapshotCacheKey = "catalog:snapshot"
const snapshotCacheTTL = 6 * time.Hour

func ruleKey(airport, zone, vehicle string) string {
	return strings.ToUpper(airport) + "|" + strings.ToLower(zone) + "|" + strings.ToLower(vehicle)
}

// Refresh rebuilds the snapshot from Mongo. A failed fetch falls back to the
// last Redis-cached snapshot, and failing that the service keeps serving
// empty tables: the agent then prices every route in estimated mode instead
// of failing outright.
func (s *DefaultCatalogService) Refresh(ctx context.Context) error {
	snap, err := s.loadFromRepo(ctx)
	if err != nil {
		s.Logger.Warn("catalog: refresh from database failed", zap.Error(err))
		if cached, cerr := s.loadFromCache(ctx); cerr == nil {
			s.setSnapshot(cached)
			s.Logger.Info("catalog: serving cached snapshot")
			return nil
		}
		s.setSnapshot(snapshot{Rules: map[string]models.PricingRule{}})
		return err
	}

	s.setSnapshot(snap)
	s.storeToCache(ctx, snap)
	return nil
}

func (s *DefaultCatalogService) loadFromRepo(ctx context.Context) (snapshot, error) {
	var snap snapshot

	hotels, err := s.Repo.AllHotels(ctx)
	if err != nil {
		return snap, fmt.Errorf("load hotels: %w", err)
	}
	zones, err := s.Repo.AllZones(ctx)
	if err != nil {
		return snap, fmt.Errorf("load zones: %w", err)
	}
	vehicles, err := s.Repo.AllVehicleTypes(ctx)
	if err != nil {
		return snap, fmt.Errorf("load vehicle types: %w", err)
	}
	rules, err := s.Repo.AllPricingRules(ctx)
	if err != nil {
		return snap, fmt.Errorf("load pricing rules: %w", err)
	}
	discount, err := s.Repo.ActiveDiscount(ctx)
	if err != nil {
		return snap, fmt.Errorf("load discount: %w", err)
	}

	snap.Hotels = hotels
	snap.Zones = zones
	snap.Vehicles = vehicles
	snap.Rules = make(map[string]models.PricingRule, len(rules))
	for _, r := range rules {
		snap.Rules[ruleKey(r.Airport, r.Zone, r.Vehicle)] = r
	}
	if discount != nil {
		snap.DiscountPct = discount.Pct
	}
	return snap, nil
}

func (s *DefaultCatalogService) loadFromCache(ctx context.Context) (snapshot, error) {
	var snap snapshot
	if s.Cache == nil {
		return snap, fmt.Errorf("no cache configured")
	}
	data, err := s.Cache.Get(ctx, snapshotCacheKey).Result()
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return snap, err
	}
	return snap, nil
}

func (s *DefaultCatalogService) storeToCache(ctx context.Context, snap snapshot) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, snapshotCacheKey, b, snapshotCacheTTL).Err(); err != nil {
		s.Logger.Warn("catalog: failed to cache snapshot", zap.Error(err))
	}
}

func (s *DefaultCatalogService) setSnapshot(snap snapshot) {
	if snap.Rules == nil {
		snap.Rules = map[string]models.PricingRule{}
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *DefaultCatalogService) Hotels() []models.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Hotels
}

func (s *DefaultCatalogService) Zones() []models.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Zones
}

func (s *DefaultCatalogService) Vehicles() []models.VehicleType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Vehicles
}

// Rule returns the authoritative pricing rule for a route, or nil.
func (s *DefaultCatalogService) Rule(airport, zone, vehicle string) *models.PricingRule {
	if airport == "" || zone == "" || vehicle == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.snap.Rules[ruleKey(airport, zone, vehicle)]; ok {
		return &r
	}
	return nil
}

func (s *DefaultCatalogService) DiscountPct() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.DiscountPct
}

func (s *DefaultCatalogService) SaveHotel(ctx context.Context, h models.Hotel) (string, error) {
	id, err := s.Repo.UpsertHotel(ctx, h)
	if err != nil {
		return "", err
	}
	return id, s.Refresh(ctx)
}

func (s *DefaultCatalogService) DeleteHotel(ctx context.Context, id string) error {
	if err := s.Repo.DeleteHotel(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *DefaultCatalogService) SaveVehicleType(ctx context.Context, v models.VehicleType) (string, error) {
	id, err := s.Repo.UpsertVehicleType(ctx, v)
	if err != nil {
		return "", err
	}
	return id, s.Refresh(ctx)
}

func (s *DefaultCatalogService) SavePricingRule(ctx context.Context, r models.PricingRule) (string, error) {
	id, err := s.Repo.UpsertPricingRule(ctx, r)
	if err != nil {
		return "", err
	}
	return id, s.Refresh(ctx)
}

func (s *DefaultCatalogService) DeletePricingRule(ctx context.Context, id string) error {
	if err := s.Repo.DeletePricingRule(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *DefaultCatalogService) SetDiscount(ctx context.Context, d models.DiscountSetting) error {
	if err := s.Repo.SetDiscount(ctx, d); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
