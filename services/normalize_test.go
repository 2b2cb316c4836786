package services

import (
	"testing"

	"redbus-scraper/models"
)

func TestClassifyBusType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"AC Sleeper (2+1)", "Sleeper + AC"},
		{"", "Not specified"},
		{"   ", "Not specified"},
		{"Luxury Coach", "Luxury Coach"},
		{"NON A/C Seater / Sleeper (2+1)", "Sleeper + Seater + Non-AC"},
		{"Non-AC Seater", "Seater + Non-AC"},
		{"A/C Seater Push Back (2+2)", "Seater + AC"},
		{"Volvo Multi-Axle I-Shift A/C Semi Sleeper", "Sleeper + AC"},
		{"Sleeping berth", "Sleeper"},
		{"Bharat Benz AC Seater", "Seater + AC"},
	}

	for _, tt := range tests {
		got := ClassifyBusType(tt.raw)
		if got != tt.want {
			t.Errorf("ClassifyBusType(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Rating
	}{
		{"4.5 Rating", models.Rating{Value: 4.5, Valid: true}},
		{"3", models.Rating{Value: 3, Valid: true}},
		{"Rated 4.2/5 by 120 people", models.Rating{Value: 4.2, Valid: true}},
		{"", models.Rating{}},
		{"Excellent", models.Rating{}},
		{"New", models.Rating{}},
	}

	for _, tt := range tests {
		got := ParseRating(tt.raw)
		if got != tt.want {
			t.Errorf("ParseRating(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}

	if got := ParseRating("Excellent").String(); got != "No rating" {
		t.Errorf("missing rating renders %q; want %q", got, "No rating")
	}
}

func TestParseSeats(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Seats
	}{
		{"12 Seats available", models.Seats{Value: 12, Valid: true}},
		{"Only 3 left", models.Seats{Value: 3, Valid: true}},
		{"Sold out", models.Seats{}},
		{"", models.Seats{}},
		{"99999999999999999999999 seats", models.Seats{}},
	}

	for _, tt := range tests {
		got := ParseSeats(tt.raw)
		if got != tt.want {
			t.Errorf("ParseSeats(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}

	if got := ParseSeats("Sold out").String(); got != "Not specified" {
		t.Errorf("missing seats renders %q; want %q", got, "Not specified")
	}
}

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"₹ 850", "850"},
		{"₹1,299", "1,299"},
		{"  INR 600 ", "600"},
		{"Rs. 450", "450"},
		{"$ 20.50", "20.50"},
		{"", "Not specified"},
		{"₹", "Not specified"},
		{"Starts from 499", "Starts from 499"},
	}

	for _, tt := range tests {
		got := CleanPrice(tt.raw)
		if got != tt.want {
			t.Errorf("CleanPrice(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizersAreIdempotent(t *testing.T) {
	busTypes := []string{"AC Sleeper (2+1)", "NON A/C Seater", "Luxury Coach", "", "A/C Semi Sleeper"}
	for _, raw := range busTypes {
		once := ClassifyBusType(raw)
		if twice := ClassifyBusType(once); twice != once {
			t.Errorf("ClassifyBusType not idempotent for %q: %q → %q", raw, once, twice)
		}
	}

	prices := []string{"₹ 850", "INR 600", "", "Rs.1,200"}
	for _, raw := range prices {
		once := CleanPrice(raw)
		if twice := CleanPrice(once); twice != once {
			t.Errorf("CleanPrice not idempotent for %q: %q → %q", raw, once, twice)
		}
	}

	for _, raw := range []string{"4.5 Rating", "3"} {
		once := ParseRating(raw)
		if twice := ParseRating(once.String()); twice != once {
			t.Errorf("ParseRating not idempotent for %q: %v → %v", raw, once, twice)
		}
	}

	for _, raw := range []string{"12 Seats available", "1 seat"} {
		once := ParseSeats(raw)
		if twice := ParseSeats(once.String()); twice != once {
			t.Errorf("ParseSeats not idempotent for %q: %v → %v", raw, once, twice)
		}
	}
}
