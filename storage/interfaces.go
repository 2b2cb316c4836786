package storage

import (
	"errors"

	"redbus-scraper/models"
)

// RecordWriter is the interface any storage backend must satisfy.
// Write receives the whole run state once, government records first.
type RecordWriter interface {
	Write(state *models.RunState) error
	Close() error
}

// Columns is the fixed CSV column schema.
var Columns = []string{
	"bus_category",
	"route_name",
	"route_link",
	"bus_name",
	"bus_type",
	"departing_time",
	"duration",
	"reaching_time",
	"star_rating",
	"price",
	"seats_available",
	"scrape_date",
}

// MultiWriter fans one Write out to several backends.
type MultiWriter struct {
	writers []RecordWriter
}

// NewMultiWriter combines writers; each receives every Write and Close.
func NewMultiWriter(writers ...RecordWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write calls every backend, even after one fails, and joins their errors.
func (m *MultiWriter) Write(state *models.RunState) error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Write(state); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiWriter) Close() error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func recordRow(r models.BusRecord) []string {
	return []string{
		string(r.Category()),
		r.RouteName,
		r.RouteLink,
		r.BusName,
		r.BusType,
		r.DepartingTime,
		r.Duration,
		r.ReachingTime,
		r.StarRating.String(),
		r.Price,
		r.SeatsAvailable.String(),
		r.ScrapeDate.Format(models.DateLayout),
	}
}
