package agent

import (
	"strings"
	"testing"

	"tropicab/models"
)

func TestComputeQuote(t *testing.T) {
	sedan := models.VehicleType{Name: "Sedan", FallbackBase: 25, FallbackPerKm: 1.0, Active: true}
	rule := func(price float64) *models.PricingRule {
		return &models.PricingRule{Airport: "PUJ", Zone: "Bavaro / Punta Cana", Vehicle: "Sedan", Price: price}
	}

	tests := []struct {
		name       string
		in         QuoteInput
		wantPrice  float64
		wantSource string
	}{
		{
			name:       "rule one-way",
			in:         QuoteInput{TripType: models.TripOneWay, Rule: rule(40), Vehicle: sedan},
			wantPrice:  40,
			wantSource: models.PriceSourceStandard,
		},
		{
			name:       "rule round trip applies factor",
			in:         QuoteInput{TripType: models.TripRoundTrip, Rule: rule(40), Vehicle: sedan},
			wantPrice:  76, // round(40 * 1.9)
			wantSource: models.PriceSourceStandard,
		},
		{
			name:       "discount applies after the round-trip factor",
			in:         QuoteInput{TripType: models.TripRoundTrip, Rule: rule(41), DiscountPct: 12, Vehicle: sedan},
			wantPrice:  69, // round(round(41*1.9) * 0.88) = round(78 * 0.88); pre-multiplier discount would give 68
			wantSource: models.PriceSourceStandard,
		},
		{
			name:       "fallback formula when no rule",
			in:         QuoteInput{TripType: models.TripOneWay, DistanceKm: 25, Vehicle: sedan},
			wantPrice:  50,
			wantSource: models.PriceSourceEstimated,
		},
		{
			name:       "fallback round trip",
			in:         QuoteInput{TripType: models.TripRoundTrip, DistanceKm: 25, Vehicle: sedan},
			wantPrice:  95,
			wantSource: models.PriceSourceEstimated,
		},
		{
			name: "matched price passes through verbatim",
			in: QuoteInput{
				TripType: models.TripRoundTrip, DistanceKm: 25, DiscountPct: 15,
				MatchedPrice: 185.5, Rule: rule(40), Vehicle: sedan,
			},
			wantPrice:  185.5,
			wantSource: models.PriceSourcePriceMatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuote(tt.in)
			if got.Price != tt.wantPrice || got.Source != tt.wantSource {
				t.Errorf("ComputeQuote() = (%v, %q), want (%v, %q)", got.Price, got.Source, tt.wantPrice, tt.wantSource)
			}
		})
	}
}

type ruleMap map[string]float64

func (m ruleMap) Rule(airport, zone, vehicle string) *models.PricingRule {
	key := strings.Join([]string{airport, zone, vehicle}, "|")
	if price, ok := m[key]; ok {
		return &models.PricingRule{Airport: airport, Zone: zone, Vehicle: vehicle, Price: price}
	}
	return nil
}

func TestBuildVehicleOptions(t *testing.T) {
	t.Run("fallback pricing sorts and recommends the cheapest fit", func(t *testing.T) {
		opts := BuildVehicleOptions(fallbackVehicleTypes, nil, "PUJ", "", 25, 0, 4, 4)
		if len(opts) != 5 {
			t.Fatalf("expected 5 options, got %d", len(opts))
		}
		if opts[0].Name != "Sedan" || opts[0].PriceOneWay != 50 {
			t.Errorf("cheapest option = %s at $%v, want Sedan at $50", opts[0].Name, opts[0].PriceOneWay)
		}
		if opts[0].Recommended {
			t.Error("Sedan recommended for 4 passengers despite 3-seat capacity")
		}
		var recommended []string
		for _, o := range opts {
			if o.Recommended {
				recommended = append(recommended, o.Name)
			}
		}
		if len(recommended) != 1 || recommended[0] != "SUV" {
			t.Errorf("recommended = %v, want [SUV]", recommended)
		}
	})

	t.Run("rules override the formula and drive the sort", func(t *testing.T) {
		rules := ruleMap{
			"PUJ|Bavaro / Punta Cana|Minivan": 38,
			"PUJ|Bavaro / Punta Cana|Sedan":   45,
		}
		opts := BuildVehicleOptions(fallbackVehicleTypes, rules, "PUJ", "Bavaro / Punta Cana", 25, 0, 2, 2)
		if opts[0].Name != "Minivan" || opts[0].PriceOneWay != 38 {
			t.Errorf("cheapest = %s at $%v, want Minivan at $38", opts[0].Name, opts[0].PriceOneWay)
		}
		if !opts[0].Recommended {
			t.Error("Minivan fits 2 passengers but was not recommended")
		}
		if opts[0].PriceRoundTrip != 72 { // round(38 * 1.9)
			t.Errorf("Minivan round trip = $%v, want $72", opts[0].PriceRoundTrip)
		}
	})

	t.Run("inactive vehicles are excluded", func(t *testing.T) {
		vehicles := append([]models.VehicleType{
			{Name: "Limo", Capacity: 4, Luggage: 4, FallbackBase: 200, FallbackPerKm: 3, Active: false},
		}, fallbackVehicleTypes...)
		opts := BuildVehicleOptions(vehicles, nil, "PUJ", "", 25, 0, 2, 2)
		for _, o := range opts {
			if o.Name == "Limo" {
				t.Fatal("inactive vehicle listed")
			}
		}
	})

	t.Run("nobody fits means nothing recommended", func(t *testing.T) {
		opts := BuildVehicleOptions(fallbackVehicleTypes, nil, "PUJ", "", 25, 0, 40, 0)
		for _, o := range opts {
			if o.Recommended {
				t.Errorf("%s recommended for a party of 40", o.Name)
			}
		}
	})
}
