package agent

import (
	"testing"

	"tropicab/models"
)

func testHotels() []models.Hotel {
	return []models.Hotel{
		{ID: "h1", Name: "Hard Rock Hotel", Zone: "Uvero Alto", SearchTerms: []string{"hard rock"}, Active: true},
		{ID: "h2", Name: "Grand Bahia Principe Bavaro", Brand: "Bahia Principe", Zone: "Bavaro / Punta Cana", Active: true},
		{ID: "h3", Name: "Luxury Bahia Principe Ambar", Brand: "Bahia Principe", Zone: "Bavaro / Punta Cana", SearchTerms: []string{"ambar"}, Active: true},
		{ID: "h4", Name: "Melia Caribe Beach", Brand: "Melia", Zone: "Bavaro / Punta Cana", Active: true},
		{ID: "h5", Name: "Sunscape Coco", Zone: "Bavaro / Punta Cana", Active: false},
	}
}

func TestResolveDestination(t *testing.T) {
	hotels := testHotels()

	t.Run("search term match", func(t *testing.T) {
		res := ResolveDestination("we're at the hard rock next week", hotels)
		if res.Hotel == nil || res.Hotel.ID != "h1" {
			t.Fatalf("expected h1, got %+v", res)
		}
	})

	t.Run("full name match", func(t *testing.T) {
		res := ResolveDestination("grand bahia principe bavaro please", hotels)
		if res.Hotel == nil || res.Hotel.ID != "h2" {
			t.Fatalf("expected h2, got %+v", res)
		}
	})

	t.Run("brand with multiple properties asks to disambiguate", func(t *testing.T) {
		res := ResolveDestination("staying at the bahia principe", hotels)
		if res.Brand != "Bahia Principe" {
			t.Fatalf("expected brand resolution, got %+v", res)
		}
		if len(res.Candidates) != 2 {
			t.Fatalf("expected 2 candidates, got %d", len(res.Candidates))
		}
		if res.Candidates[0].Name != "Grand Bahia Principe Bavaro" {
			t.Errorf("candidates not sorted by name: %q first", res.Candidates[0].Name)
		}
	})

	t.Run("brand query already disambiguated by search term", func(t *testing.T) {
		res := ResolveDestination("bahia ambar", hotels)
		if res.Hotel == nil || res.Hotel.ID != "h3" {
			t.Fatalf("expected h3, got %+v", res)
		}
	})

	t.Run("brand with single property resolves directly", func(t *testing.T) {
		res := ResolveDestination("the melia", hotels)
		if res.Hotel == nil || res.Hotel.ID != "h4" {
			t.Fatalf("expected h4, got %+v", res)
		}
	})

	t.Run("zone keyword", func(t *testing.T) {
		res := ResolveDestination("an airbnb in bavaro", hotels)
		if res.Zone != "Bavaro / Punta Cana" {
			t.Fatalf("expected zone, got %+v", res)
		}
	})

	t.Run("inactive hotel is invisible", func(t *testing.T) {
		res := ResolveDestination("sunscape coco", hotels)
		if res.Hotel != nil {
			t.Fatalf("inactive hotel resolved: %+v", res)
		}
	})

	t.Run("nothing matches", func(t *testing.T) {
		res := ResolveDestination("a quiet guesthouse up the hill", hotels)
		if !res.Empty() {
			t.Fatalf("expected empty resolution, got %+v", res)
		}
	})
}

func TestEstimateDistanceKm(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		airport string
		want    float64
	}{
		{"resort keyword", "a beachfront resort", "PUJ", 30},
		{"downtown keyword", "downtown apartment", "SDQ", 15},
		{"airport default", "somewhere nice", "POP", 18},
		{"global default", "somewhere nice", "XXX", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDistanceKm(tt.text, tt.airport); got != tt.want {
				t.Errorf("EstimateDistanceKm(%q, %q) = %v, want %v", tt.text, tt.airport, got, tt.want)
			}
		})
	}
}
