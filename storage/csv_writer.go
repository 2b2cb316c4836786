package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"redbus-scraper/models"
	"redbus-scraper/utils"
)

// CSVWriter writes a run's bus records to a CSV file with the fixed Columns header.
type CSVWriter struct {
	path   string
	logger *utils.Logger
}

// NewCSVWriter returns a writer for path. The file is only created by Write,
// so an empty run never leaves a header-only file behind.
func NewCSVWriter(path string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{path: path, logger: logger}
}

// Write creates (or truncates) the file and writes government records followed
// by private records. With no records at all it logs a warning and writes nothing.
func (c *CSVWriter) Write(state *models.RunState) error {
	if state == nil || state.Len() == 0 {
		c.logger.Warn("[csv] No data to save! %s left untouched", c.path)
		return nil
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", c.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, rec := range state.All() {
		if err := w.Write(recordRow(rec)); err != nil {
			return fmt.Errorf("csv: write row for %q: %w", rec.BusName, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csv: close %q: %w", c.path, err)
	}

	c.logger.Info("[csv] Successfully saved data to %s", c.path)
	c.logger.Info("[csv] Total records saved: %d", state.Len())
	return nil
}

// Close is a no-op; Write opens and closes the file itself.
func (c *CSVWriter) Close() error {
	return nil
}
