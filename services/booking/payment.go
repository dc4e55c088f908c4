package booking

import (
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// createPaymentIntent opens a Stripe payment intent for a card booking.
// Returns the intent ID; the widget completes the payment client-side with
// the intent's client secret fetched separately.
func createPaymentIntent(amount float64, currency, description, email string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(int64(math.Round(amount * 100))),
		Currency:     stripe.String(strings.ToLower(currency)),
		Description:  stripe.String(description),
		ReceiptEmail: stripe.String(email),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ID, nil
}
