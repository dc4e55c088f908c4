package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction follows one rule everywhere: ordered pattern lists tried in
// sequence, first valid match wins. A later, broader pattern must never run
// before an earlier, narrower one already matched, so the order of each list
// is part of the behavior.

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

const countAlt = `(\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)`

var passengerPatterns = []*regexp.Regexp{
	regexp.MustCompile(countAlt + `\s*(?:passengers?|people|persons?|pax|adults?|guests?|travell?ers?)`),
	regexp.MustCompile(`(?:party|group|family)\s+of\s+` + countAlt),
	regexp.MustCompile(`(?:we\s+are|we're|there\s+are|there\s+will\s+be)\s+` + countAlt),
	regexp.MustCompile(countAlt + `\s+of\s+us`),
	regexp.MustCompile(`with\s+` + countAlt + `\s+(?:kids?|children|friends?)`),
}

var luggagePatterns = []*regexp.Regexp{
	regexp.MustCompile(countAlt + `\s*(?:suitcases?|bags?|luggages?|maletas?|pieces\s+of\s+luggage)`),
	regexp.MustCompile(`(?:no|without|zero)\s+(?:suitcases?|bags?|luggage|checked\s+bags?)`),
	regexp.MustCompile(`carry[- ]?ons?\s+only`),
}

var roundTripKeywords = []string{
	"round trip", "round-trip", "roundtrip", "both ways", "two way",
	"two-way", "ida y vuelta", "return", "and back", "back to the airport",
}

var oneWayKeywords = []string{
	"one way", "one-way", "oneway", "single", "just there", "only there",
	"solo ida", "arrival only", "no return",
}

const monthAlt = `(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec)`

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(monthAlt + `\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?`),
	regexp.MustCompile(`\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthAlt + `(?:,?\s*\d{4})?`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?\b`),
}

// ExtractAirport returns the airport code mentioned in the utterance, or ""
// when none of the patterns match.
func ExtractAirport(text string) string {
	lower := strings.ToLower(text)
	for _, p := range airportPatterns {
		if p.re.MatchString(lower) {
			return p.code
		}
	}
	return ""
}

// ExtractPassengers pulls a passenger count out of free text. Counts outside
// [1,50] are rejected and leave the slot unset.
func ExtractPassengers(text string) (int, bool) {
	return extractCount(text, passengerPatterns, 1, 50)
}

// ExtractLuggage pulls a suitcase count out of free text. Zero is a valid
// answer ("no bags"); counts outside [0,50] are rejected.
func ExtractLuggage(text string) (int, bool) {
	lower := strings.ToLower(text)
	for i, re := range luggagePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		// The "no bags" and "carry-ons only" patterns carry no count group.
		if i > 0 || len(m) < 2 {
			return 0, true
		}
		n, ok := parseCount(m[1])
		if !ok || n < 0 || n > 50 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// ExtractTripType detects round-trip vs one-way synonyms. Round-trip wins
// when both appear, since one-way synonyms like "single" rarely co-occur
// meaningfully.
func ExtractTripType(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range roundTripKeywords {
		if strings.Contains(lower, kw) {
			return "Round trip"
		}
	}
	for _, kw := range oneWayKeywords {
		if strings.Contains(lower, kw) {
			return "One-way"
		}
	}
	return ""
}

// ExtractDate returns the first date-looking phrase in the utterance,
// verbatim, or "".
func ExtractDate(text string) string {
	lower := strings.ToLower(text)
	for _, re := range datePatterns {
		if m := re.FindString(lower); m != "" {
			return m
		}
	}
	return ""
}

// GuessHotelName strips conversational stop-words from an utterance and
// title-cases the remainder as a literal hotel-name guess. Returns "" when
// nothing usable is left. Used only after the resolver failed.
func GuessHotelName(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', '!', '?', ';', ':':
			return ' '
		}
		return r
	}, strings.ToLower(text))

	var kept []string
	for _, w := range strings.Fields(cleaned) {
		if hotelStopWords[w] {
			continue
		}
		kept = append(kept, titleCase(w))
	}
	if len(kept) == 0 || len(kept) > 8 {
		return ""
	}
	return strings.Join(kept, " ")
}

func extractCount(text string, patterns []*regexp.Regexp, min, max int) (int, bool) {
	lower := strings.ToLower(text)
	for _, re := range patterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, ok := parseCount(m[1])
		if !ok || n < min || n > max {
			// A matched pattern with an out-of-range count is a reject,
			// not a retry with a later pattern.
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func parseCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if n, ok := numberWords[s]; ok {
		return n, true
	}
	return 0, false
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
