package agent

import (
	"math"
	"sort"

	"tropicab/models"
)

// RoundTripFactor is the single named round-trip multiplier. A round trip is
// deliberately cheaper than two one-ways; every price path must use this
// constant rather than duplicating it.
const RoundTripFactor = 1.9

// Quote is a computed price with its provenance tag.
type Quote struct {
	Price  float64
	Source string
}

// QuoteInput carries the pure inputs of one price computation. ComputeQuote
// depends on nothing else, so identical inputs always reproduce identical
// results.
type QuoteInput struct {
	TripType     string
	DistanceKm   float64
	DiscountPct  float64
	MatchedPrice float64             // accepted competitor price; 0 when absent
	Rule         *models.PricingRule // authoritative rule when one exists
	Vehicle      models.VehicleType  // fallback base/per-km constants
}

// ComputeQuote derives a price, in priority order: matched price verbatim,
// authoritative rule, then the distance formula. All prices are rounded to
// whole dollars at the point of computation; the discount is applied after
// the round-trip multiplier, never before.
func ComputeQuote(in QuoteInput) Quote {
	if in.MatchedPrice > 0 {
		return Quote{Price: in.MatchedPrice, Source: models.PriceSourcePriceMatch}
	}

	var base float64
	source := models.PriceSourceStandard
	if in.Rule != nil {
		base = in.Rule.Price
	} else {
		base = in.Vehicle.FallbackBase + in.Vehicle.FallbackPerKm*in.DistanceKm
		source = models.PriceSourceEstimated
	}

	price := math.Round(base)
	if in.TripType == models.TripRoundTrip {
		price = math.Round(price * RoundTripFactor)
	}
	if in.DiscountPct > 0 {
		price = math.Round(price * (1 - in.DiscountPct/100))
	}
	return Quote{Price: price, Source: source}
}

// ruleLookup resolves pricing rules for (airport, zone, vehicle) routes.
type ruleLookup interface {
	Rule(airport, zone, vehicle string) *models.PricingRule
}

// BuildVehicleOptions prices every vehicle type for the route and returns
// them sorted ascending by one-way price. The cheapest option whose capacity
// and luggage both fit the party is flagged recommended; vehicles that cannot
// fit are still listed so the user can see why an upgrade is suggested.
func BuildVehicleOptions(vehicles []models.VehicleType, rules ruleLookup,
	airport, zone string, distanceKm, discountPct float64,
	passengers, suitcases int) []models.VehicleOption {

	var opts []models.VehicleOption
	for _, v := range vehicles {
		if !v.Active {
			continue
		}
		var rule *models.PricingRule
		if rules != nil {
			rule = rules.Rule(airport, zone, v.Name)
		}
		oneWay := ComputeQuote(QuoteInput{
			TripType:    models.TripOneWay,
			DistanceKm:  distanceKm,
			DiscountPct: discountPct,
			Rule:        rule,
			Vehicle:     v,
		})
		roundTrip := ComputeQuote(QuoteInput{
			TripType:    models.TripRoundTrip,
			DistanceKm:  distanceKm,
			DiscountPct: discountPct,
			Rule:        rule,
			Vehicle:     v,
		})
		opts = append(opts, models.VehicleOption{
			Name:           v.Name,
			Capacity:       v.Capacity,
			Luggage:        v.Luggage,
			PriceOneWay:    oneWay.Price,
			PriceRoundTrip: roundTrip.Price,
		})
	}

	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].PriceOneWay != opts[j].PriceOneWay {
			return opts[i].PriceOneWay < opts[j].PriceOneWay
		}
		return opts[i].Name < opts[j].Name
	})

	for i := range opts {
		if opts[i].Capacity >= passengers && opts[i].Luggage >= suitcases {
			opts[i].Recommended = true
			break
		}
	}
	return opts
}
