package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "tropicab/database/repository/bookings"
	"tropicab/models"
	"tropicab/services/tasks"
	"tropicab/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBookingService implements Service over the Mongo repository, with
// Stripe for card payments and asynq for pickup reminders.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Scheduler *asynq.Client
	Logger    *zap.Logger
}

func (s *DefaultBookingService) Confirm(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	b := models.Booking{
		ID:            uuid.New().String(),
		SessionID:     in.SessionID,
		Airport:       in.Action.Airport,
		Hotel:         in.Action.Hotel,
		Region:        in.Action.Region,
		Vehicle:       in.Action.Vehicle,
		Passengers:    in.Action.Passengers,
		Suitcases:     in.Action.Suitcases,
		TripType:      in.Action.TripType,
		Price:         in.Action.Price,
		Currency:      in.Action.Currency,
		PriceSource:   in.Action.PriceSource,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		FlightNumber:  strings.ToUpper(strings.TrimSpace(in.FlightNumber)),
		PickupAt:      in.PickupAt,
		PaymentMethod: in.PaymentMethod,
		Status:        "confirmed",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if in.PaymentMethod == "card" {
		desc := fmt.Sprintf("Transfer %s → %s (%s)", b.Airport, b.Hotel, b.TripType)
		paymentID, err := createPaymentIntent(b.Price, b.Currency, desc, b.CustomerEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		b.PaymentID = paymentID
		// Card bookings stay pending until the widget reports the payment
		// succeeded.
		b.Status = "pending"
	}

	if _, err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	go s.sendConfirmationEmail(b)
	s.scheduleReminder(b)

	return &b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if b.Status == "cancelled" {
		return nil
	}
	if err := s.Repo.UpdateStatus(ctx, id, "cancelled"); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	go s.sendCancellationEmail(*b)
	return nil
}

func (s *DefaultBookingService) History(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func validateInput(in models.BookingInput) error {
	switch {
	case strings.TrimSpace(in.CustomerName) == "":
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	case !strings.Contains(in.CustomerEmail, "@"):
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	case in.PickupAt.Before(time.Now()):
		return fmt.Errorf("%w: pickup time must be in the future", ErrInvalidInput)
	case in.PaymentMethod != "card" && in.PaymentMethod != "cash":
		return fmt.Errorf("%w: payment method must be card or cash", ErrInvalidInput)
	case in.Action.Price <= 0:
		return fmt.Errorf("%w: booking has no price", ErrInvalidInput)
	case in.Action.Airport == "" || in.Action.Vehicle == "":
		return fmt.Errorf("%w: booking action is incomplete", ErrInvalidInput)
	}
	return nil
}

// scheduleReminder enqueues a pickup reminder 24h out. Bookings made inside
// that window simply get no reminder.
func (s *DefaultBookingService) scheduleReminder(b models.Booking) {
	if s.Scheduler == nil {
		return
	}
	fireAt := b.PickupAt.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID: b.ID,
		Email:     b.CustomerEmail,
		Name:      b.CustomerName,
		PickupAt:  b.PickupAt.Format(time.RFC1123),
		Airport:   b.Airport,
		Hotel:     b.Hotel,
		Vehicle:   b.Vehicle,
	}
	task, opts, err := tasks.NewPickupReminderTask(payload, fireAt)
	if err != nil {
		s.Logger.Error("booking: failed to build reminder task", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Scheduler.Enqueue(task, opts...); err != nil {
		s.Logger.Error("booking: failed to enqueue reminder", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) sendConfirmationEmail(b models.Booking) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour transfer is booked!\n\n"+
			"From: %s\nTo: %s\nVehicle: %s\nPassengers: %d\nSuitcases: %d\n"+
			"Trip: %s\nPickup: %s\nTotal: $%.0f %s (%s)\n\n"+
			"Your driver will be waiting in the arrivals hall with a sign. ¡Buen viaje!\nTropicab",
		b.CustomerName, b.Airport, b.Hotel, b.Vehicle, b.Passengers, b.Suitcases,
		b.TripType, b.PickupAt.Format(time.RFC1123), b.Price, b.Currency, b.PaymentMethod,
	)
	if err := utils.SendEmail(b.CustomerEmail, "Your Tropicab transfer is confirmed", body); err != nil {
		s.Logger.Error("booking: failed to send confirmation email", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) sendCancellationEmail(b models.Booking) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour transfer booking %s has been cancelled. "+
			"If you paid by card, the refund is on its way.\n\nTropicab",
		b.CustomerName, b.ID,
	)
	if err := utils.SendEmail(b.CustomerEmail, "Your Tropicab booking was cancelled", body); err != nil {
		s.Logger.Error("booking: failed to send cancellation email", zap.String("bookingId", b.ID), zap.Error(err))
	}
}
