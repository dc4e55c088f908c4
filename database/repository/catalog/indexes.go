package catalogRepo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ensureIndexes creates the lookup indexes the agent depends on.
func (r *mongoCatalogRepo) ensureIndexes(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	hotelIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}, {Key: "active", Value: 1}}},
	}
	if _, err := r.hotels.Indexes().CreateMany(ctx, hotelIdx); err != nil {
		log.Printf("catalog: failed to create hotel indexes: %v", err)
	}

	ruleIdx := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "airport", Value: 1},
			{Key: "zone", Value: 1},
			{Key: "vehicle", Value: 1},
		}},
	}
	if _, err := r.rules.Indexes().CreateMany(ctx, ruleIdx); err != nil {
		log.Printf("catalog: failed to create pricing rule indexes: %v", err)
	}
}
