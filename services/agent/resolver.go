package agent

import (
	"sort"
	"strings"

	"tropicab/models"
)

// Resolution is the outcome of matching free text against the hotel catalog.
// Exactly one of the fields is populated; the zero value means nothing
// matched and the caller should fall back to distance estimation. Resolution
// is never an error: absence of a match shifts pricing into estimated mode.
type Resolution struct {
	Hotel      *models.Hotel  // single exact record
	Brand      string         // brand needing disambiguation
	Candidates []models.Hotel // properties of that brand, sorted by name
	Zone       string         // known area without a specific hotel
}

// Empty reports whether nothing resolved.
func (r Resolution) Empty() bool {
	return r.Hotel == nil && r.Brand == "" && r.Zone == ""
}

// ResolveDestination maps free text to a hotel record, a brand
// disambiguation request, or a zone.
func ResolveDestination(text string, hotels []models.Hotel) Resolution {
	lower := strings.ToLower(text)

	// 1. Exact/substring match against hotel names and search terms.
	for i := range hotels {
		h := &hotels[i]
		if !h.Active {
			continue
		}
		if matchesHotel(lower, h) {
			return Resolution{Hotel: h}
		}
	}

	// 2. Brand keyword with multi-property disambiguation.
	for _, bk := range brandKeywords {
		if !strings.Contains(lower, bk.keyword) {
			continue
		}
		props := brandProperties(bk.brand, hotels)
		switch len(props) {
		case 0:
			continue
		case 1:
			return Resolution{Hotel: &props[0]}
		}
		// The query may already disambiguate: all words of one property's
		// name present, or one of its search terms present.
		if h := disambiguate(lower, props); h != nil {
			return Resolution{Hotel: h}
		}
		sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
		return Resolution{Brand: bk.brand, Candidates: props}
	}

	// 3. Direct zone keyword.
	for _, zk := range zoneKeywords {
		if strings.Contains(lower, zk.keyword) {
			return Resolution{Zone: zk.zone}
		}
	}

	return Resolution{}
}

// ZoneForHotel returns the zone of a resolved hotel, or "".
func ZoneForHotel(h *models.Hotel) string {
	if h == nil {
		return ""
	}
	return h.Zone
}

// EstimateDistanceKm derives a distance for the estimation fallback from a
// keyword table, or the airport-specific default when no keyword matches.
func EstimateDistanceKm(text, airport string) float64 {
	lower := strings.ToLower(text)
	for _, dk := range distanceKeywords {
		if strings.Contains(lower, dk.keyword) {
			return dk.km
		}
	}
	if km, ok := airportDefaultKm[airport]; ok {
		return km
	}
	return 25
}

func matchesHotel(lowerQuery string, h *models.Hotel) bool {
	name := strings.ToLower(h.Name)
	if name != "" && strings.Contains(lowerQuery, name) {
		return true
	}
	for _, term := range h.SearchTerms {
		t := strings.ToLower(term)
		if t != "" && strings.Contains(lowerQuery, t) {
			return true
		}
	}
	return false
}

func brandProperties(brand string, hotels []models.Hotel) []models.Hotel {
	var props []models.Hotel
	for _, h := range hotels {
		if h.Active && strings.EqualFold(h.Brand, brand) {
			props = append(props, h)
		}
	}
	return props
}

func disambiguate(lowerQuery string, props []models.Hotel) *models.Hotel {
	for i := range props {
		h := &props[i]
		if allWordsPresent(lowerQuery, h.Name) {
			return h
		}
		for _, term := range h.SearchTerms {
			t := strings.ToLower(term)
			if t != "" && strings.Contains(lowerQuery, t) {
				return h
			}
		}
	}
	return nil
}

func allWordsPresent(lowerQuery, name string) bool {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(lowerQuery, w) {
			return false
		}
	}
	return true
}
