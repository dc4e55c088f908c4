package agent

import (
	"regexp"

	"tropicab/models"
)

// Airport codes served.
const (
	AirportPUJ = "PUJ" // Punta Cana
	AirportSDQ = "SDQ" // Santo Domingo, Las Americas
	AirportSTI = "STI" // Santiago, Cibao
	AirportPOP = "POP" // Puerto Plata
)

// airportPattern pairs a regex with the airport code it resolves to.
// Order is semantically significant: narrower patterns (explicit codes)
// run before broader city-name and contextual ones, and the first match
// wins.
type airportPattern struct {
	re   *regexp.Regexp
	code string
}

var airportPatterns = []airportPattern{
	// Explicit IATA codes.
	{regexp.MustCompile(`\bpuj\b`), AirportPUJ},
	{regexp.MustCompile(`\bsdq\b`), AirportSDQ},
	{regexp.MustCompile(`\bsti\b`), AirportSTI},
	{regexp.MustCompile(`\bpop\b`), AirportPOP},
	// Airport-qualified city names.
	{regexp.MustCompile(`punta\s*cana\s+(?:international\s+)?airport`), AirportPUJ},
	{regexp.MustCompile(`las\s+americas(?:\s+(?:international\s+)?airport)?`), AirportSDQ},
	{regexp.MustCompile(`cibao(?:\s+(?:international\s+)?airport)?`), AirportSTI},
	{regexp.MustCompile(`puerto\s+plata\s+airport`), AirportPOP},
	// Contextual phrasings around a city name.
	{regexp.MustCompile(`(?:arriv\w*|land\w*|fly\w*|from|into)\s+(?:at\s+|in\s+|to\s+)?punta\s*cana`), AirportPUJ},
	{regexp.MustCompile(`(?:arriv\w*|land\w*|fly\w*|from|into)\s+(?:at\s+|in\s+|to\s+)?santo\s+domingo`), AirportSDQ},
	{regexp.MustCompile(`(?:arriv\w*|land\w*|fly\w*|from|into)\s+(?:at\s+|in\s+|to\s+)?santiago`), AirportSTI},
	{regexp.MustCompile(`(?:arriv\w*|land\w*|fly\w*|from|into)\s+(?:at\s+|in\s+|to\s+)?puerto\s+plata`), AirportPOP},
	// Bare city names, broadest match last.
	{regexp.MustCompile(`punta\s*cana`), AirportPUJ},
	{regexp.MustCompile(`santo\s+domingo`), AirportSDQ},
	{regexp.MustCompile(`santiago`), AirportSTI},
	{regexp.MustCompile(`puerto\s+plata`), AirportPOP},
}

// AirportNames maps codes to display names used in prompts and recaps.
var AirportNames = map[string]string{
	AirportPUJ: "Punta Cana (PUJ)",
	AirportSDQ: "Santo Domingo (SDQ)",
	AirportSTI: "Santiago (STI)",
	AirportPOP: "Puerto Plata (POP)",
}

// zoneKeyword maps a destination keyword to its pricing zone. Checked in
// order; more specific areas come before the broad ones that contain them.
type zoneKeyword struct {
	keyword string
	zone    string
}

var zoneKeywords = []zoneKeyword{
	{"uvero alto", "Uvero Alto"},
	{"cap cana", "Cap Cana"},
	{"macao", "Uvero Alto"},
	{"bavaro", "Bavaro / Punta Cana"},
	{"punta cana", "Bavaro / Punta Cana"},
	{"bayahibe", "Bayahibe / La Romana"},
	{"la romana", "Bayahibe / La Romana"},
	{"juan dolio", "Juan Dolio"},
	{"boca chica", "Boca Chica"},
	{"santo domingo", "Santo Domingo"},
	{"las terrenas", "Samana / Las Terrenas"},
	{"samana", "Samana / Las Terrenas"},
	{"sosua", "Sosua"},
	{"cabarete", "Cabarete"},
	{"puerto plata", "Puerto Plata"},
}

// distanceKeyword maps a destination keyword to an estimated distance in km,
// used only when no hotel or zone resolves.
type distanceKeyword struct {
	keyword string
	km      float64
}

var distanceKeywords = []distanceKeyword{
	{"resort", 30},
	{"all inclusive", 30},
	{"marina", 35},
	{"beach", 25},
	{"villa", 25},
	{"downtown", 15},
	{"city center", 15},
	{"centro", 15},
	{"airbnb", 20},
	{"apartment", 20},
}

// airportDefaultKm is the estimation fallback when no distance keyword
// matches either.
var airportDefaultKm = map[string]float64{
	AirportPUJ: 25,
	AirportSDQ: 20,
	AirportSTI: 15,
	AirportPOP: 18,
}

// brandKeyword maps a short brand mention to the full brand name carried on
// hotel records.
type brandKeyword struct {
	keyword string
	brand   string
}

var brandKeywords = []brandKeyword{
	{"bahia", "Bahia Principe"},
	{"iberostar", "Iberostar"},
	{"riu", "Riu"},
	{"barcelo", "Barcelo"},
	{"melia", "Melia"},
	{"dreams", "Dreams"},
	{"secrets", "Secrets"},
	{"occidental", "Occidental"},
	{"majestic", "Majestic"},
	{"excellence", "Excellence"},
}

// fallbackVehicleTypes drives pricing when the vehicle catalog could not be
// loaded. Same shape as the backend records so the calculator does not care
// which source it got.
var fallbackVehicleTypes = []models.VehicleType{
	{Name: "Sedan", Capacity: 3, Luggage: 3, FallbackBase: 25, FallbackPerKm: 1.0, Active: true},
	{Name: "SUV", Capacity: 5, Luggage: 5, FallbackBase: 35, FallbackPerKm: 1.3, Active: true},
	{Name: "Minivan", Capacity: 6, Luggage: 8, FallbackBase: 45, FallbackPerKm: 1.5, Active: true},
	{Name: "Van", Capacity: 10, Luggage: 12, FallbackBase: 55, FallbackPerKm: 1.8, Active: true},
	{Name: "Minibus", Capacity: 20, Luggage: 24, FallbackBase: 90, FallbackPerKm: 2.4, Active: true},
}

// hotelStopWords are conversational filler stripped before guessing a
// literal hotel name from free text.
var hotelStopWords = map[string]bool{
	"i": true, "i'm": true, "im": true, "we": true, "we're": true,
	"are": true, "is": true, "am": true, "my": true, "our": true,
	"the": true, "a": true, "an": true, "at": true, "in": true,
	"to": true, "of": true, "staying": true, "stay": true, "going": true,
	"will": true, "be": true, "it": true, "its": true, "it's": true,
	"called": true, "name": true, "booked": true, "into": true,
	"headed": true, "heading": true,
}
