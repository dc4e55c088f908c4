package agent

import (
	"fmt"
	"strings"

	"tropicab/models"
)

var welcomeSuggestions = []string{
	"Book a transfer",
	"How much is a transfer?",
	"Where do I meet my driver?",
}

func welcomeResponse() *models.AgentResponse {
	return &models.AgentResponse{
		Message: "¡Hola! Welcome to Tropicab 🌴 I can book your private airport transfer anywhere in the " +
			"Dominican Republic. Which airport are you flying into?",
		Suggestions: welcomeSuggestions,
	}
}

// promptForStep re-asks the question for the current step, used both on the
// happy path and whenever an input could not be parsed.
func (e *Engine) promptForStep(bc *BookingContext) *models.AgentResponse {
	switch bc.Step {
	case StepAwaitingAirport:
		return &models.AgentResponse{
			Message:     "Which airport are you arriving at?",
			Suggestions: []string{"Punta Cana (PUJ)", "Santo Domingo (SDQ)", "Santiago (STI)", "Puerto Plata (POP)"},
		}
	case StepAwaitingHotel:
		return &models.AgentResponse{
			Message:     "Great! Which hotel or area are you staying at?",
			Suggestions: []string{"Hard Rock Hotel", "Bavaro", "Cap Cana", "Uvero Alto"},
		}
	case StepAwaitingPropertyResolution:
		return &models.AgentResponse{
			Message:     fmt.Sprintf("%s has several properties here — which one is yours?", bc.PendingBrand),
			Suggestions: bc.PendingProperties,
		}
	case StepAwaitingPassengers:
		return &models.AgentResponse{
			Message:     "How many passengers will be traveling?",
			Suggestions: []string{"1", "2", "4", "6+"},
		}
	case StepAwaitingLuggage:
		return &models.AgentResponse{
			Message:     "And how many suitcases are you bringing? (carry-ons ride free)",
			Suggestions: []string{"0", "2", "4", "6+"},
		}
	case StepAwaitingVehicleSelection:
		return &models.AgentResponse{
			Message:     "Pick the vehicle that suits you best — the recommended one is the cheapest that fits your group.",
			Suggestions: e.vehicleNames(),
		}
	case StepAwaitingTripType:
		return &models.AgentResponse{
			Message:     "Would you like a one-way transfer or a round trip? Round trips save you money versus booking twice.",
			Suggestions: []string{"One-way", "Round trip"},
		}
	case StepAwaitingConfirmation:
		return e.summaryResponse(bc)
	}
	return welcomeResponse()
}

// recap summarizes the slots collected so far, appended to FAQ and Q&A
// answers given mid-booking so the user knows how to get back on track.
func recap(bc *BookingContext) string {
	if bc.Step == StepIdle {
		return ""
	}
	var parts []string
	if bc.Airport != "" {
		parts = append(parts, "airport: "+AirportNames[bc.Airport])
	}
	if bc.Hotel != "" {
		parts = append(parts, "hotel: "+bc.Hotel)
	}
	if bc.Passengers > 0 {
		parts = append(parts, fmt.Sprintf("passengers: %d", bc.Passengers))
	}
	if bc.HasLuggage() {
		parts = append(parts, fmt.Sprintf("suitcases: %d", bc.Suitcases))
	}
	if bc.Vehicle != "" {
		parts = append(parts, "vehicle: "+bc.Vehicle)
	}
	if bc.TripType != "" {
		parts = append(parts, "trip: "+bc.TripType)
	}
	if len(parts) == 0 {
		return "\n\nYour booking is still open — say \"continue\" to pick up where we left off."
	}
	return "\n\nSo far I have " + strings.Join(parts, ", ") +
		". Say \"continue\" to pick up where we left off."
}

// summaryResponse shows the full booking for confirmation.
func (e *Engine) summaryResponse(bc *BookingContext) *models.AgentResponse {
	var sb strings.Builder
	sb.WriteString("Here's your transfer:\n")
	fmt.Fprintf(&sb, "✈️ From: %s\n", AirportNames[bc.Airport])
	fmt.Fprintf(&sb, "🏨 To: %s", bc.Hotel)
	if bc.Region != "" {
		fmt.Fprintf(&sb, " (%s)", bc.Region)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "🚐 Vehicle: %s · %d passengers · %d suitcases\n", bc.Vehicle, bc.Passengers, bc.Suitcases)
	fmt.Fprintf(&sb, "🔁 %s — $%.0f USD", bc.TripType, bc.Price)
	if bc.PriceSource == models.PriceSourceEstimated {
		sb.WriteString(" (estimated — we'll confirm the exact rate before pickup)")
	}
	sb.WriteString("\n\nShall I book it?")

	resp := &models.AgentResponse{
		Message:     sb.String(),
		Suggestions: []string{"Yes, book it", "Change vehicle", "Start over"},
	}
	if url := e.vehicleImageURL(bc.Vehicle); url != "" {
		resp.VehicleImage = url
	}
	resp.GalleryImages = e.galleryURLs(bc.Vehicle)
	return resp
}

// genericFallback is the substitute for any unexpected internal failure: the
// user is never shown a technical error.
func genericFallback(bc *BookingContext) *models.AgentResponse {
	return &models.AgentResponse{
		Message:     "Let me help you with your airport transfer!" + recap(bc),
		Suggestions: welcomeSuggestions,
	}
}

func bookingAction(bc *BookingContext) *models.BookingAction {
	return &models.BookingAction{
		Airport:         bc.Airport,
		Hotel:           bc.Hotel,
		Region:          bc.Region,
		Vehicle:         bc.Vehicle,
		Passengers:      bc.Passengers,
		Suitcases:       bc.Suitcases,
		TripType:        bc.TripType,
		TravelDate:      bc.TravelDate,
		Price:           bc.Price,
		Currency:        "USD",
		PriceSource:     bc.PriceSource,
		PaymentProvider: "stripe",
		PaymentMethods:  []string{"card", "cash"},
	}
}
