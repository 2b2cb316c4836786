package models

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// NoRating is written in place of a missing or unparseable star rating.
	NoRating = "No rating"
	// NotSpecified is written in place of a missing price, seat count or bus type.
	NotSpecified = "Not specified"

	// DateLayout is the ISO layout used for scrape_date.
	DateLayout = "2006-01-02"
)

// Route is one (source, destination) pair to query.
type Route struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// Name returns the human readable route, e.g. "Bangalore to Chennai".
func (r Route) Name() string {
	return titleCase(r.Source) + " to " + titleCase(r.Destination)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// Rating is an optional star rating.
type Rating struct {
	Value float64
	Valid bool
}

func (r Rating) String() string {
	if !r.Valid {
		return NoRating
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Seats is an optional count of available seats.
type Seats struct {
	Value int
	Valid bool
}

func (s Seats) String() string {
	if !s.Valid {
		return NotSpecified
	}
	return strconv.Itoa(s.Value)
}

// BusRecord is one cleaned bus offering on a route.
//
// The category is not stored: it is derived from BusName on every call to
// Category so that the two can never disagree.
type BusRecord struct {
	RouteName      string
	RouteLink      string
	BusName        string
	BusType        string
	DepartingTime  string
	Duration       string
	ReachingTime   string
	StarRating     Rating
	Price          string
	SeatsAvailable Seats
	ScrapeDate     time.Time
}

// Category classifies the record by its operator name.
func (b BusRecord) Category() Category {
	return CategoryOf(b.BusName)
}

// RunState accumulates the records of one run, split by category.
// Records are only ever appended.
type RunState struct {
	Government []BusRecord
	Private    []BusRecord
}

// NewRunState returns an empty RunState.
func NewRunState() *RunState {
	return &RunState{
		Government: make([]BusRecord, 0),
		Private:    make([]BusRecord, 0),
	}
}

// Add appends rec to the sequence matching its category.
func (s *RunState) Add(rec BusRecord) {
	if rec.Category() == Government {
		s.Government = append(s.Government, rec)
		return
	}
	s.Private = append(s.Private, rec)
}

// Merge appends every record of batch in order.
func (s *RunState) Merge(batch []BusRecord) {
	for _, rec := range batch {
		s.Add(rec)
	}
}

// All returns government records followed by private records.
func (s *RunState) All() []BusRecord {
	all := make([]BusRecord, 0, s.Len())
	all = append(all, s.Government...)
	return append(all, s.Private...)
}

// Len returns the total number of records.
func (s *RunState) Len() int {
	return len(s.Government) + len(s.Private)
}
