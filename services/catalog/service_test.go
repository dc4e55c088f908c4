package catalog

import (
	"context"
	"errors"
	"testing"

	"tropicab/models"

	"go.uber.org/zap"
)

type fakeRepo struct {
	hotels   []models.Hotel
	vehicles []models.VehicleType
	rules    []models.PricingRule
	discount *models.DiscountSetting
	fail     bool
}

func (f *fakeRepo) AllHotels(ctx context.Context) ([]models.Hotel, error) {
	if f.fail {
		return nil, errors.New("mongo down")
	}
	return f.hotels, nil
}
func (f *fakeRepo) AllZones(ctx context.Context) ([]models.Zone, error)               { return nil, nil }
func (f *fakeRepo) AllVehicleTypes(ctx context.Context) ([]models.VehicleType, error)  { return f.vehicles, nil }
func (f *fakeRepo) AllPricingRules(ctx context.Context) ([]models.PricingRule, error)  { return f.rules, nil }
func (f *fakeRepo) ActiveDiscount(ctx context.Context) (*models.DiscountSetting, error) {
	return f.discount, nil
}
func (f *fakeRepo) UpsertHotel(ctx context.Context, h models.Hotel) (string, error) { return h.ID, nil }
func (f *fakeRepo) DeleteHotel(ctx context.Context, id string) error                { return nil }
func (f *fakeRepo) UpsertVehicleType(ctx context.Context, v models.VehicleType) (string, error) {
	return v.ID, nil
}
func (f *fakeRepo) UpsertPricingRule(ctx context.Context, r models.PricingRule) (string, error) {
	return r.ID, nil
}
func (f *fakeRepo) DeletePricingRule(ctx context.Context, id string) error           { return nil }
func (f *fakeRepo) SetDiscount(ctx context.Context, d models.DiscountSetting) error { return nil }

func TestRefreshAndLookups(t *testing.T) {
	repo := &fakeRepo{
		hotels: []models.Hotel{{ID: "h1", Name: "Hard Rock Hotel", Zone: "Uvero Alto", Active: true}},
		rules: []models.PricingRule{
			{Airport: "puj", Zone: "Uvero Alto", Vehicle: "Sedan", Price: 55, Active: true},
		},
		discount: &models.DiscountSetting{Pct: 10, Active: true},
	}
	svc := &DefaultCatalogService{Repo: repo, Logger: zap.NewNop()}
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if got := len(svc.Hotels()); got != 1 {
		t.Errorf("Hotels() = %d entries, want 1", got)
	}
	if got := svc.DiscountPct(); got != 10 {
		t.Errorf("DiscountPct() = %v, want 10", got)
	}

	// Rule lookup is case-insensitive on all three key parts.
	r := svc.Rule("PUJ", "uvero alto", "SEDAN")
	if r == nil || r.Price != 55 {
		t.Fatalf("Rule() = %+v, want price 55", r)
	}
	if svc.Rule("SDQ", "Uvero Alto", "Sedan") != nil {
		t.Error("rule returned for wrong airport")
	}
}

func TestRefreshFailureServesEmptyTables(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeRepo{fail: true}, Logger: zap.NewNop()}
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	// Degraded, not broken: lookups work and return nothing.
	if svc.Hotels() != nil {
		t.Error("expected no hotels")
	}
	if svc.Rule("PUJ", "Uvero Alto", "Sedan") != nil {
		t.Error("expected no rules")
	}
	if svc.DiscountPct() != 0 {
		t.Error("expected zero discount")
	}
}
