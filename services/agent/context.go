package agent

// Step identifies where a conversation stands in the booking flow.
type Step string

const (
	StepIdle                       Step = "IDLE"
	StepAwaitingAirport            Step = "AWAITING_AIRPORT"
	StepAwaitingHotel              Step = "AWAITING_HOTEL"
	StepAwaitingPropertyResolution Step = "AWAITING_PROPERTY_RESOLUTION"
	StepAwaitingPassengers         Step = "AWAITING_PASSENGERS"
	StepAwaitingLuggage            Step = "AWAITING_LUGGAGE"
	StepAwaitingVehicleSelection   Step = "AWAITING_VEHICLE_SELECTION"
	StepAwaitingTripType           Step = "AWAITING_TRIP_TYPE"
	StepAwaitingConfirmation       Step = "AWAITING_CONFIRMATION"
)

// BookingContext holds everything collected during one conversation. The
// engine never stores it; the caller loads it before a turn and persists it
// after, so processing is a pure (context, utterance) -> (context, response)
// reduction.
type BookingContext struct {
	Step Step `json:"step"`

	Airport          string `json:"airport,omitempty"`
	Hotel            string `json:"hotel,omitempty"`
	Region           string `json:"region,omitempty"`
	ResortPropertyID string `json:"resortPropertyId,omitempty"`
	Passengers       int    `json:"passengers,omitempty"`
	Suitcases        int    `json:"suitcases"` // -1 until captured; 0 is a valid count
	Vehicle          string `json:"vehicle,omitempty"`
	TripType         string `json:"tripType,omitempty"`
	TravelDate       string `json:"travelDate,omitempty"`

	Price         float64 `json:"price,omitempty"`
	PriceSource   string  `json:"priceSource,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	MatchedPrice  float64 `json:"matchedPrice,omitempty"`

	Language string `json:"language,omitempty"`

	// Transient brand-disambiguation state.
	PendingBrand      string   `json:"pendingBrand,omitempty"`
	PendingProperties []string `json:"pendingProperties,omitempty"`
}

// NewBookingContext returns a fresh idle context.
func NewBookingContext() *BookingContext {
	return &BookingContext{Step: StepIdle, Suitcases: -1}
}

// Reset clears every slot and returns the context to idle.
func (c *BookingContext) Reset() {
	*c = *NewBookingContext()
}

// HasLuggage reports whether a luggage count was captured (0 counts).
func (c *BookingContext) HasLuggage() bool {
	return c.Suitcases >= 0
}
