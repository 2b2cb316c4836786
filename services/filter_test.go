package services

import (
	"testing"

	"redbus-scraper/models"
)

func TestFilter(t *testing.T) {
	records := []models.BusRecord{
		{RouteName: "Bangalore to Chennai", BusName: "VRL Travels", DepartingTime: "21:30"},
		{RouteName: "Bangalore to Chennai", BusName: "KSRTC Airavat", DepartingTime: "06:15"},
		{RouteName: "Bangalore to Mysore", BusName: "SRS Travels", DepartingTime: ""},
		{RouteName: "Bangalore to Mysore", BusName: "KSRTC Rajahamsa", DepartingTime: "07:00"},
	}

	tests := []struct {
		name       string
		categories []string
		routes     []string
		want       []string
	}{
		{"no filters sorts by departure", nil, nil,
			[]string{"KSRTC Airavat", "KSRTC Rajahamsa", "VRL Travels", "SRS Travels"}},
		{"category only", []string{"government"}, nil,
			[]string{"KSRTC Airavat", "KSRTC Rajahamsa"}},
		{"route only", nil, []string{"bangalore to mysore"},
			[]string{"KSRTC Rajahamsa", "SRS Travels"}},
		{"both", []string{"Private"}, []string{"Bangalore to Chennai"},
			[]string{"VRL Travels"}},
	}

	for _, tt := range tests {
		got := Filter(records, tt.categories, tt.routes)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %d records, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i, r := range got {
			if r.BusName != tt.want[i] {
				t.Errorf("%s: record %d = %q; want %q", tt.name, i, r.BusName, tt.want[i])
			}
		}
	}
}

func TestFilterSortsDepartureChronologically(t *testing.T) {
	records := []models.BusRecord{
		{BusName: "Late", DepartingTime: "10:00"},
		{BusName: "Unknown", DepartingTime: ""},
		{BusName: "Odd", DepartingTime: "Midnight"},
		{BusName: "Early", DepartingTime: "9:30"},
		{BusName: "Night", DepartingTime: "23:05"},
	}

	got := Filter(records, nil, nil)
	want := []string{"Early", "Late", "Night", "Odd", "Unknown"}
	for i, r := range got {
		if r.BusName != want[i] {
			t.Errorf("record %d = %q; want %q", i, r.BusName, want[i])
		}
	}
}
