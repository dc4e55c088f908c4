package catalogRepo

import (
	"context"
	"errors"
	"time"

	"tropicab/database"
	"tropicab/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &mongoCatalogRepo{
		hotels:   database.Collection("hotels"),
		zones:    database.Collection("zones"),
		vehicles: database.Collection("vehicle_types"),
		rules:    database.Collection("pricing_rules"),
		settings: database.Collection("settings"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *mongoCatalogRepo) AllHotels(ctx context.Context) ([]models.Hotel, error) {
	cursor, err := r.hotels.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *mongoCatalogRepo) AllZones(ctx context.Context) ([]models.Zone, error) {
	cursor, err := r.zones.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var zones []models.Zone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *mongoCatalogRepo) AllVehicleTypes(ctx context.Context) ([]models.VehicleType, error) {
	cursor, err := r.vehicles.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.VehicleType
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *mongoCatalogRepo) AllPricingRules(ctx context.Context) ([]models.PricingRule, error) {
	cursor, err := r.rules.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ActiveDiscount returns the single active discount setting, or nil when none
// is configured.
func (r *mongoCatalogRepo) ActiveDiscount(ctx context.Context) (*models.DiscountSetting, error) {
	var d models.DiscountSetting
	opts := options.FindOne().SetSort(bson.M{"updated_at": -1})
	err := r.settings.FindOne(ctx, bson.M{"active": true}, opts).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoCatalogRepo) UpsertHotel(ctx context.Context, h models.Hotel) (string, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
		h.CreatedAt = time.Now()
	}
	h.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.hotels.ReplaceOne(ctx, bson.M{"id": h.ID}, h, opts)
	if err != nil {
		return "", err
	}
	return h.ID, nil
}

func (r *mongoCatalogRepo) DeleteHotel(ctx context.Context, id string) error {
	res, err := r.hotels.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("hotel not found")
	}
	return nil
}

func (r *mongoCatalogRepo) UpsertVehicleType(ctx context.Context, v models.VehicleType) (string, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
		v.CreatedAt = time.Now()
	}
	v.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.vehicles.ReplaceOne(ctx, bson.M{"id": v.ID}, v, opts)
	if err != nil {
		return "", err
	}
	return v.ID, nil
}

func (r *mongoCatalogRepo) UpsertPricingRule(ctx context.Context, rule models.PricingRule) (string, error) {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
		rule.CreatedAt = time.Now()
	}
	rule.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.rules.ReplaceOne(ctx, bson.M{"id": rule.ID}, rule, opts)
	if err != nil {
		return "", err
	}
	return rule.ID, nil
}

func (r *mongoCatalogRepo) DeletePricingRule(ctx context.Context, id string) error {
	res, err := r.rules.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("pricing rule not found")
	}
	return nil
}

// SetDiscount deactivates any existing discount and stores the new one.
func (r *mongoCatalogRepo) SetDiscount(ctx context.Context, d models.DiscountSetting) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.UpdatedAt = time.Now()

	if _, err := r.settings.UpdateMany(ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	); err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.settings.ReplaceOne(ctx, bson.M{"id": d.ID}, d, opts)
	return err
}
