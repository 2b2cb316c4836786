package services

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"redbus-scraper/models"
	"redbus-scraper/utils"
)

func rated(v float64) models.Rating { return models.Rating{Value: v, Valid: true} }
func seats(n int) models.Seats      { return models.Seats{Value: n, Valid: true} }

func sampleRecords() []models.BusRecord {
	return []models.BusRecord{
		{RouteName: "Bangalore to Chennai", BusName: "KSRTC Airavat", Price: "850", StarRating: rated(4.6), SeatsAvailable: seats(10)},
		{RouteName: "Bangalore to Chennai", BusName: "VRL Travels", Price: "1,200", StarRating: rated(4.1), SeatsAvailable: seats(5)},
		{RouteName: "Bangalore to Mysore", BusName: "SRS Travels", Price: "Not specified", StarRating: models.Rating{}, SeatsAvailable: models.Seats{}},
		{RouteName: "Bangalore to Mysore", BusName: "TNSTC Ultra Deluxe", Price: "450", StarRating: rated(3.9), SeatsAvailable: seats(20)},
	}
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleRecords())
	if r.TotalBuses != 4 {
		t.Errorf("TotalBuses: got %d, want 4", r.TotalBuses)
	}
	if r.GovernmentBuses != 2 || r.PrivateBuses != 2 {
		t.Errorf("split: got %d/%d, want 2/2", r.GovernmentBuses, r.PrivateBuses)
	}
}

func TestInsightGroups(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleRecords())

	if len(r.ByCategory) != 2 || r.ByCategory[0].Name != "Government" {
		t.Fatalf("ByCategory: got %+v", r.ByCategory)
	}
	gov := r.ByCategory[0]
	if gov.AveragePrice != 650 {
		t.Errorf("government average price: got %.2f, want 650", gov.AveragePrice)
	}
	if gov.TotalSeats != 30 {
		t.Errorf("government seats: got %d, want 30", gov.TotalSeats)
	}

	if len(r.ByRoute) != 2 {
		t.Fatalf("ByRoute: got %d groups, want 2", len(r.ByRoute))
	}
	mysore := r.ByRoute[1]
	if mysore.Buses != 2 || mysore.PricedBuses != 1 || mysore.AveragePrice != 450 {
		t.Errorf("mysore group: got %+v", mysore)
	}
}

func TestInsightTopRated(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(sampleRecords())
	if len(r.TopRated) != 3 {
		t.Fatalf("TopRated len: got %d, want 3", len(r.TopRated))
	}
	if r.TopRated[0].BusName != "KSRTC Airavat" {
		t.Errorf("TopRated[0]: got %q, want %q", r.TopRated[0].BusName, "KSRTC Airavat")
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	r := svc.Generate(nil)
	if r.TotalBuses != 0 {
		t.Errorf("expected 0 total buses for empty input")
	}

	var buf bytes.Buffer
	svc.Print(&buf, r)
	if !strings.Contains(buf.String(), "No buses collected") {
		t.Errorf("empty report output: %q", buf.String())
	}
}

func TestInsightPrint(t *testing.T) {
	svc := NewInsightService(utils.NewLogger())
	var buf bytes.Buffer
	svc.Print(&buf, svc.Generate(sampleRecords()))

	out := buf.String()
	for _, want := range []string{"Bangalore to Mysore", "KSRTC Airavat", "650.00", "4.6"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q", want)
		}
	}
}

func TestNumericPrice(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1,299", 1299, true},
		{"850.50", 850.5, true},
		{"Not specified", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := NumericPrice(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NumericPrice(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"VRL Travels", 38, "VRL Travels"},
		{"Karnataka State Road Transport Corporation", 20, "Karnataka State R..."},
		{"ಕರ್ನಾಟಕ ರಾಜ್ಯ ರಸ್ತೆ ಸಾರಿಗೆ ನಿಗಮ", 10, "ಕರ್ನಾಟಕ..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q; want %q", tt.in, tt.max, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
		}
	}

	long := strings.Repeat("ಕ", 50)
	if got := truncate(long, 38); utf8.RuneCountInString(got) != 38 {
		t.Errorf("truncated length: got %d runes, want 38", utf8.RuneCountInString(got))
	}
}
