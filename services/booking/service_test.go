package booking

import (
	"errors"
	"testing"
	"time"

	"tropicab/models"
)

func validInput() models.BookingInput {
	return models.BookingInput{
		SessionID: "s1",
		Action: models.BookingAction{
			Airport: "PUJ", Hotel: "Hard Rock Hotel", Vehicle: "SUV",
			Passengers: 4, Suitcases: 3, TripType: models.TripRoundTrip,
			Price: 129, Currency: "USD", PriceSource: models.PriceSourceEstimated,
		},
		CustomerName:  "Ana García",
		CustomerEmail: "ana@example.com",
		PickupAt:      time.Now().Add(72 * time.Hour),
		PaymentMethod: "cash",
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.BookingInput)
		wantErr bool
	}{
		{"valid", func(in *models.BookingInput) {}, false},
		{"missing name", func(in *models.BookingInput) { in.CustomerName = "  " }, true},
		{"bad email", func(in *models.BookingInput) { in.CustomerEmail = "not-an-email" }, true},
		{"pickup in the past", func(in *models.BookingInput) { in.PickupAt = time.Now().Add(-time.Hour) }, true},
		{"unknown payment method", func(in *models.BookingInput) { in.PaymentMethod = "crypto" }, true},
		{"zero price", func(in *models.BookingInput) { in.Action.Price = 0 }, true},
		{"incomplete action", func(in *models.BookingInput) { in.Action.Vehicle = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := validateInput(in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("validateInput() = %v, want ErrInvalidInput", err)
				}
			} else if err != nil {
				t.Errorf("validateInput() = %v, want nil", err)
			}
		})
	}
}
