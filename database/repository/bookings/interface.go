package bookingRepo

import (
	"context"

	"tropicab/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed transfer bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}
