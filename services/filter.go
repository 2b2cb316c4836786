package services

import (
	"sort"
	"strings"
	"time"

	"redbus-scraper/models"
)

// Filter keeps records whose category and route are in the given sets, matched
// case-insensitively. An empty set matches everything. The result is ordered by
// departing time as a clock time, records without one last.
func Filter(records []models.BusRecord, categories, routes []string) []models.BusRecord {
	catSet := lowerSet(categories)
	routeSet := lowerSet(routes)

	out := make([]models.BusRecord, 0, len(records))
	for _, r := range records {
		if len(catSet) > 0 && !catSet[strings.ToLower(string(r.Category()))] {
			continue
		}
		if len(routeSet) > 0 && !routeSet[strings.ToLower(r.RouteName)] {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return departsBefore(out[i].DepartingTime, out[j].DepartingTime)
	})
	return out
}

// departsBefore orders "HH:MM" times chronologically, so "9:30" sorts before
// "10:00". Values that do not parse fall back to string order after parsed ones.
func departsBefore(a, b string) bool {
	if a == "" || b == "" {
		return a != "" && b == ""
	}
	ta, errA := time.Parse("15:04", strings.TrimSpace(a))
	tb, errB := time.Parse("15:04", strings.TrimSpace(b))
	switch {
	case errA == nil && errB == nil:
		return ta.Before(tb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[strings.ToLower(v)] = true
		}
	}
	return set
}
