package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"redbus-scraper/models"
)

// ErrBadHeader is returned when a CSV file does not start with the Columns header.
var ErrBadHeader = errors.New("csv: unexpected header")

// ReadCSV loads the records of a file written by CSVWriter. The bus_category
// column is not trusted: categories are re-derived from bus_name.
func ReadCSV(path string) ([]models.BusRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrBadHeader)
	}
	if len(rows[0]) != len(Columns) {
		return nil, fmt.Errorf("%w: %d columns, want %d", ErrBadHeader, len(rows[0]), len(Columns))
	}
	for i, col := range Columns {
		if rows[0][i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, rows[0][i], col)
		}
	}

	records := make([]models.BusRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(Columns) {
			return nil, fmt.Errorf("csv: %q line %d: %d fields, want %d", path, i+2, len(row), len(Columns))
		}
		records = append(records, parseRow(row))
	}
	return records, nil
}

func parseRow(row []string) models.BusRecord {
	rec := models.BusRecord{
		RouteName:     row[1],
		RouteLink:     row[2],
		BusName:       row[3],
		BusType:       row[4],
		DepartingTime: row[5],
		Duration:      row[6],
		ReachingTime:  row[7],
		Price:         row[9],
	}
	if v, err := strconv.ParseFloat(row[8], 64); err == nil {
		rec.StarRating = models.Rating{Value: v, Valid: true}
	}
	if n, err := strconv.Atoi(row[10]); err == nil {
		rec.SeatsAvailable = models.Seats{Value: n, Valid: true}
	}
	if d, err := time.Parse(models.DateLayout, row[11]); err == nil {
		rec.ScrapeDate = d
	}
	return rec
}
