package qa

import (
	"context"

	"tropicab/models"
)

// FallbackAnswer is returned whenever the model call fails or times out; the
// widget never sees a technical error.
const FallbackAnswer = "That's a great question! I'm best at helping with airport transfers — prices, " +
	"vehicles, and bookings. For anything else about your trip, our team at hola@tropicab.com is happy to help."

// Service answers general travel questions that fall outside the booking
// flow. Implementations must degrade gracefully: a failed or slow call
// returns an error and the caller substitutes FallbackAnswer.
type Service interface {
	Ask(ctx context.Context, question string, history []models.ChatMessage, inBookingFlow bool) (string, error)
}
