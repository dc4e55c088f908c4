package agent

import "testing"

func TestExtractAirport(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iata code", "arriving at PUJ on tuesday", "PUJ"},
		{"iata code lowercase", "sdq please", "SDQ"},
		{"airport qualified name", "punta cana international airport", "PUJ"},
		{"las americas", "I land at Las Americas", "SDQ"},
		{"cibao", "flying into cibao airport", "STI"},
		{"contextual arrival", "we are landing in santo domingo at noon", "SDQ"},
		{"contextual flying", "flying into punta cana", "PUJ"},
		{"bare city name", "santiago", "STI"},
		{"bare puerto plata", "puerto plata", "POP"},
		{"code wins over city", "PUJ, not the santo domingo one", "PUJ"},
		{"no airport", "hello there", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAirport(tt.in); got != tt.want {
				t.Errorf("ExtractAirport(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractPassengers(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int
		wantOK bool
	}{
		{"digit with unit", "4 passengers", 4, true},
		{"word with unit", "two adults", 2, true},
		{"party of", "party of five", 5, true},
		{"we are", "we are 3", 3, true},
		{"of us", "there will be four of us", 4, true},
		{"with kids", "me and my wife with 2 kids", 2, true},
		{"pax", "6 pax", 6, true},
		{"over limit rejected", "60 people", 0, false},
		{"zero rejected", "0 passengers", 0, false},
		{"reject does not retry later patterns", "999 people, we are 4", 0, false},
		{"no count", "a few of my friends", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPassengers(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractPassengers(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractLuggage(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int
		wantOK bool
	}{
		{"digit with unit", "3 suitcases", 3, true},
		{"word with unit", "two bags", 2, true},
		{"spanish", "4 maletas", 4, true},
		{"explicit none", "no bags at all", 0, true},
		{"carry-ons only", "carry-ons only", 0, true},
		{"over limit rejected", "70 suitcases", 0, false},
		{"no mention", "just the two of us", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLuggage(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractLuggage(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractTripType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"round trip", "round trip please", "Round trip"},
		{"and back", "to the hotel and back", "Round trip"},
		{"spanish round", "ida y vuelta", "Round trip"},
		{"one way", "just one way", "One-way"},
		{"single", "single trip", "One-way"},
		{"round wins over single", "a single round trip booking", "Round trip"},
		{"nothing", "tuesday morning", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTripType(tt.in); got != tt.want {
				t.Errorf("ExtractTripType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"month day", "arriving March 15", "march 15"},
		{"month day year", "january 3, 2027", "january 3, 2027"},
		{"day of month", "the 2nd of april", "2nd of april"},
		{"numeric", "landing 12/24", "12/24"},
		{"none", "sometime next week", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDate(tt.in); got != tt.want {
				t.Errorf("ExtractDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGuessHotelName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips filler", "I'm staying at the Sunrise Palace", "Sunrise Palace"},
		{"keeps order", "we are booked into Villa Taina, Cabarete", "Villa Taina Cabarete"},
		{"all filler", "we are staying at the", ""},
		{"too long", "it is a really lovely place somewhere on that long road past town", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuessHotelName(tt.in); got != tt.want {
				t.Errorf("GuessHotelName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
