package agent

import (
	"context"
	"testing"

	"tropicab/models"
	"tropicab/services/catalog"

	"go.uber.org/zap"
)

// stubCatalog serves fixed reference data; the embedded interface panics on
// the admin methods the engine never calls.
type stubCatalog struct {
	catalog.Service
	hotels   []models.Hotel
	vehicles []models.VehicleType
	rules    ruleMap
	discount float64
}

func (s *stubCatalog) Hotels() []models.Hotel          { return s.hotels }
func (s *stubCatalog) Vehicles() []models.VehicleType  { return s.vehicles }
func (s *stubCatalog) DiscountPct() float64            { return s.discount }
func (s *stubCatalog) Rule(airport, zone, vehicle string) *models.PricingRule {
	return s.rules.Rule(airport, zone, vehicle)
}

func newTestEngine(cat catalog.Service) *Engine {
	return NewEngine(cat, nil, nil, zap.NewNop())
}

func turn(t *testing.T, e *Engine, bc *BookingContext, text string) *models.AgentResponse {
	t.Helper()
	resp := e.ProcessMessage(context.Background(), bc, text, nil)
	if resp == nil {
		t.Fatalf("nil response for %q", text)
	}
	return resp
}

func TestHappyPathConversation(t *testing.T) {
	e := newTestEngine(nil)
	bc := NewBookingContext()

	turn(t, e, bc, "I need a transfer")
	if bc.Step != StepAwaitingAirport {
		t.Fatalf("after intent: step = %s", bc.Step)
	}

	turn(t, e, bc, "PUJ")
	if bc.Airport != "PUJ" || bc.Step != StepAwaitingHotel {
		t.Fatalf("after airport: %+v", bc)
	}

	turn(t, e, bc, "Hard Rock Hotel")
	if bc.Hotel != "Hard Rock Hotel" || bc.Step != StepAwaitingPassengers {
		t.Fatalf("after hotel: %+v", bc)
	}

	turn(t, e, bc, "4 people")
	if bc.Passengers != 4 || bc.Step != StepAwaitingLuggage {
		t.Fatalf("after passengers: %+v", bc)
	}

	resp := turn(t, e, bc, "3 suitcases")
	if bc.Suitcases != 3 || bc.Step != StepAwaitingVehicleSelection {
		t.Fatalf("after luggage: %+v", bc)
	}
	if resp.PriceScan == nil {
		t.Fatal("luggage answer did not produce a price scan")
	}
	var recommended []string
	for _, o := range resp.PriceScan.Options {
		if o.Recommended {
			recommended = append(recommended, o.Name)
		}
	}
	if len(recommended) != 1 || recommended[0] != "SUV" {
		t.Fatalf("recommended = %v, want [SUV]", recommended)
	}

	turn(t, e, bc, "SUV")
	if bc.Vehicle != "SUV" || bc.Step != StepAwaitingTripType {
		t.Fatalf("after vehicle: %+v", bc)
	}

	turn(t, e, bc, "round trip")
	if bc.Step != StepAwaitingConfirmation {
		t.Fatalf("after trip type: step = %s", bc.Step)
	}
	// SUV estimate at PUJ default 25km: round(35 + 1.3*25) = 68, round trip
	// round(68 * 1.9) = 129.
	if bc.Price != 129 || bc.PriceSource != models.PriceSourceEstimated {
		t.Fatalf("price = %v (%s), want 129 (estimated)", bc.Price, bc.PriceSource)
	}

	resp = turn(t, e, bc, "yes")
	if resp.BookingAction == nil {
		t.Fatal("confirmation did not produce a booking action")
	}
	if resp.BookingAction.Price != 129 || resp.BookingAction.Vehicle != "SUV" {
		t.Fatalf("booking action = %+v", resp.BookingAction)
	}
	if bc.Step != StepIdle {
		t.Fatalf("context not reset after handoff: step = %s", bc.Step)
	}
}

func TestIdleFastPathSkipsAnsweredQuestions(t *testing.T) {
	cat := &stubCatalog{hotels: testHotels(), vehicles: fallbackVehicleTypes}
	e := newTestEngine(cat)
	bc := NewBookingContext()

	turn(t, e, bc, "Hi, I need a ride from PUJ to Hard Rock Hotel for 4 people")
	if bc.Airport != "PUJ" {
		t.Errorf("airport = %q", bc.Airport)
	}
	if bc.Hotel != "Hard Rock Hotel" || bc.Region != "Uvero Alto" {
		t.Errorf("hotel = %q region = %q", bc.Hotel, bc.Region)
	}
	if bc.Passengers != 4 {
		t.Errorf("passengers = %d", bc.Passengers)
	}
	if bc.Step != StepAwaitingLuggage {
		t.Errorf("step = %s, want %s", bc.Step, StepAwaitingLuggage)
	}
}

func TestBrandDisambiguation(t *testing.T) {
	cat := &stubCatalog{hotels: testHotels(), vehicles: fallbackVehicleTypes}

	t.Run("by index", func(t *testing.T) {
		e := newTestEngine(cat)
		bc := NewBookingContext()
		turn(t, e, bc, "we're flying into punta cana, staying at a bahia principe")
		if bc.Step != StepAwaitingPropertyResolution || len(bc.PendingProperties) != 2 {
			t.Fatalf("expected disambiguation, got %+v", bc)
		}
		turn(t, e, bc, "1")
		if bc.Hotel != "Grand Bahia Principe Bavaro" || bc.Step != StepAwaitingPassengers {
			t.Fatalf("after pick: %+v", bc)
		}
		if bc.PendingBrand != "" || bc.PendingProperties != nil {
			t.Error("pending state not cleared")
		}
	})

	t.Run("by partial name", func(t *testing.T) {
		e := newTestEngine(cat)
		bc := NewBookingContext()
		bc.Step = StepAwaitingHotel
		turn(t, e, bc, "one of the bahia principe resorts")
		if bc.Step != StepAwaitingPropertyResolution {
			t.Fatalf("expected disambiguation, got %+v", bc)
		}
		turn(t, e, bc, "ambar")
		if bc.Hotel != "Luxury Bahia Principe Ambar" {
			t.Fatalf("after pick: %+v", bc)
		}
	})

	t.Run("unrecognized reply re-asks", func(t *testing.T) {
		e := newTestEngine(cat)
		bc := NewBookingContext()
		bc.Step = StepAwaitingPropertyResolution
		bc.PendingBrand = "Bahia Principe"
		bc.PendingProperties = []string{"Grand Bahia Principe Bavaro", "Luxury Bahia Principe Ambar"}
		turn(t, e, bc, "the pretty blue building")
		if bc.Step != StepAwaitingPropertyResolution {
			t.Fatalf("step regressed to %s", bc.Step)
		}
	})
}

func TestStartOverResetsEverything(t *testing.T) {
	e := newTestEngine(nil)
	bc := NewBookingContext()
	bc.Step = StepAwaitingTripType
	bc.Airport = "PUJ"
	bc.Hotel = "Hard Rock Hotel"
	bc.Passengers = 4
	bc.Suitcases = 3
	bc.Vehicle = "SUV"

	turn(t, e, bc, "actually, let's start over")
	if bc.Step != StepIdle || bc.Airport != "" || bc.Vehicle != "" {
		t.Fatalf("context not reset: %+v", bc)
	}
	if bc.Suitcases != -1 {
		t.Errorf("suitcases = %d, want -1 sentinel", bc.Suitcases)
	}
}

func TestFAQMidFlowKeepsState(t *testing.T) {
	e := newTestEngine(nil)
	bc := NewBookingContext()
	bc.Step = StepAwaitingPassengers
	bc.Airport = "PUJ"
	bc.Hotel = "Hard Rock Hotel"

	resp := turn(t, e, bc, "wait, where do I meet the driver?")
	if bc.Step != StepAwaitingPassengers || bc.Airport != "PUJ" {
		t.Fatalf("FAQ answer mutated state: %+v", bc)
	}
	if resp.Message == "" {
		t.Fatal("empty FAQ answer")
	}
}

func TestGeneralQuestionExclusions(t *testing.T) {
	e := newTestEngine(nil)

	tests := []struct {
		in   string
		want bool
	}{
		{"4", false},
		{"yes", false},
		{"puj", false},
		{"suv", false},
		{"round trip", false},
		{"do you operate at night?", true},
		{"tell me about your service", true},
	}
	for _, tt := range tests {
		if got := matchesGeneralQuestion(e, NewBookingContext(), tt.in); got != tt.want {
			t.Errorf("matchesGeneralQuestion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnparsableInputNeverRegressesStep(t *testing.T) {
	e := newTestEngine(nil)
	// The hotel step is absent here: unknown text there becomes a literal
	// hotel-name guess and legitimately advances.
	steps := []Step{
		StepAwaitingAirport, StepAwaitingPassengers,
		StepAwaitingLuggage, StepAwaitingVehicleSelection,
		StepAwaitingTripType, StepAwaitingConfirmation,
	}
	for _, step := range steps {
		bc := NewBookingContext()
		bc.Step = step
		bc.Airport = "PUJ"
		bc.Hotel = "Somewhere"
		bc.Passengers = 2
		if step == StepAwaitingVehicleSelection || step == StepAwaitingTripType || step == StepAwaitingConfirmation {
			bc.Suitcases = 2
			bc.Vehicle = "Sedan"
			bc.TripType = models.TripOneWay
		}
		turn(t, e, bc, "zzz gibberish zzz")
		if bc.Step != step {
			t.Errorf("step %s moved to %s on gibberish", step, bc.Step)
		}
	}
}

func TestConfirmationVehicleChange(t *testing.T) {
	e := newTestEngine(nil)
	bc := NewBookingContext()
	bc.Step = StepAwaitingConfirmation
	bc.Airport = "PUJ"
	bc.Hotel = "Hard Rock Hotel"
	bc.Passengers = 4
	bc.Suitcases = 3
	bc.Vehicle = "SUV"
	bc.TripType = models.TripOneWay
	bc.Price = 68

	t.Run("change vehicle loops back to selection", func(t *testing.T) {
		ctxCopy := *bc
		resp := turn(t, e, &ctxCopy, "change vehicle")
		if ctxCopy.Step != StepAwaitingVehicleSelection {
			t.Fatalf("step = %s", ctxCopy.Step)
		}
		if resp.PriceScan == nil {
			t.Fatal("no price scan on vehicle change")
		}
	})

	t.Run("restating a vehicle re-prices in place", func(t *testing.T) {
		ctxCopy := *bc
		turn(t, e, &ctxCopy, "make it a minivan")
		if ctxCopy.Step != StepAwaitingConfirmation {
			t.Fatalf("step = %s", ctxCopy.Step)
		}
		if ctxCopy.Vehicle != "Minivan" {
			t.Fatalf("vehicle = %s", ctxCopy.Vehicle)
		}
		if ctxCopy.Price != 83 { // round(45 + 1.5*25)
			t.Fatalf("price = %v, want 83", ctxCopy.Price)
		}
	})
}

func TestSetContextForPriceScan(t *testing.T) {
	e := newTestEngine(nil)

	t.Run("with vehicle resumes at trip type", func(t *testing.T) {
		bc := NewBookingContext()
		e.SetContextForPriceScan(bc, models.PriceScanSelection{
			Airport: "PUJ", Hotel: "Hard Rock Hotel", Passengers: 4, Suitcases: 3, Vehicle: "SUV",
		})
		if bc.Step != StepAwaitingTripType || bc.Vehicle != "SUV" {
			t.Fatalf("context = %+v", bc)
		}
	})

	t.Run("without vehicle shows the scan", func(t *testing.T) {
		bc := NewBookingContext()
		resp := e.SetContextForPriceScan(bc, models.PriceScanSelection{
			Airport: "PUJ", Hotel: "Hard Rock Hotel", Passengers: 4, Suitcases: 3,
		})
		if bc.Step != StepAwaitingVehicleSelection || resp.PriceScan == nil {
			t.Fatalf("context = %+v, scan = %v", bc, resp.PriceScan)
		}
	})
}

func TestGreetingOnlyAtIdle(t *testing.T) {
	e := newTestEngine(nil)

	bc := NewBookingContext()
	resp := turn(t, e, bc, "hola!")
	if bc.Step != StepIdle || len(resp.Suggestions) == 0 {
		t.Fatalf("greeting mishandled: step=%s resp=%+v", bc.Step, resp)
	}

	// Mid-flow, "hi" is just another unparsable answer, not a restart.
	bc.Step = StepAwaitingPassengers
	bc.Airport = "PUJ"
	turn(t, e, bc, "hi")
	if bc.Step != StepAwaitingPassengers || bc.Airport != "PUJ" {
		t.Fatalf("mid-flow greeting mutated state: %+v", bc)
	}
}
