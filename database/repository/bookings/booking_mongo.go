package bookingRepo

import (
	"context"
	"errors"
	"time"

	"tropicab/database"
	"tropicab/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.Collection("bookings")}
}

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus moves a booking through its status lifecycle.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}

// ListByEmail fetches all bookings made with a given customer email,
// newest first.
func (r *mongoBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"customer_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
