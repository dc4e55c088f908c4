package booking

import (
	"context"
	"errors"

	"tropicab/models"
)

var (
	ErrInvalidInput = errors.New("invalid booking input")
	ErrNotFound     = errors.New("booking not found")
)

// Service turns a confirmed agent conversation into a persisted booking and
// manages it afterwards.
type Service interface {
	Confirm(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) error
	History(ctx context.Context, email string) ([]models.Booking, error)
}
