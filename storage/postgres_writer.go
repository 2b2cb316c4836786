package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"redbus-scraper/models"
	"redbus-scraper/utils"
)

// PostgresWriter appends bus records to PostgreSQL.
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	return newPostgresWriter(db, logger)
}

func newPostgresWriter(db *sql.DB, logger *utils.Logger) (*PostgresWriter, error) {
	pw := &PostgresWriter{db: db, logger: logger}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pw, nil
}

// star_rating is left unbounded: a hook that picks up a review count must not
// abort the whole transaction.
const schema = `
	CREATE TABLE IF NOT EXISTS bus_records (
		id              BIGSERIAL    PRIMARY KEY,
		bus_category    VARCHAR(16)  NOT NULL,
		route_name      TEXT         NOT NULL,
		route_link      TEXT         NOT NULL,
		bus_name        TEXT         NOT NULL,
		bus_type        TEXT         NOT NULL DEFAULT '',
		departing_time  TEXT         NOT NULL DEFAULT '',
		duration        TEXT         NOT NULL DEFAULT '',
		reaching_time   TEXT         NOT NULL DEFAULT '',
		star_rating     NUMERIC,
		price           TEXT         NOT NULL DEFAULT '',
		seats_available INTEGER,
		scrape_date     DATE         NOT NULL,
		created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	);

	ALTER TABLE bus_records ALTER COLUMN star_rating TYPE NUMERIC;

	CREATE INDEX IF NOT EXISTS idx_bus_records_category    ON bus_records(bus_category);
	CREATE INDEX IF NOT EXISTS idx_bus_records_route       ON bus_records(route_name);
	CREATE INDEX IF NOT EXISTS idx_bus_records_scrape_date ON bus_records(scrape_date);
`

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(schema)
	return err
}

// Write inserts every record of the run in one transaction. Missing ratings and
// seat counts are stored as NULL rather than as sentinel text.
func (pw *PostgresWriter) Write(state *models.RunState) error {
	if state == nil || state.Len() == 0 {
		pw.logger.Warn("[postgres] No data to save!")
		return nil
	}

	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO bus_records (
			bus_category, route_name, route_link, bus_name, bus_type,
			departing_time, duration, reaching_time, star_rating, price,
			seats_available, scrape_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`)
	if err != nil {
		return fmt.Errorf("postgres: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range state.All() {
		if _, err := stmt.Exec(
			string(r.Category()), r.RouteName, r.RouteLink, r.BusName, r.BusType,
			r.DepartingTime, r.Duration, r.ReachingTime, nullRating(r.StarRating), r.Price,
			nullSeats(r.SeatsAvailable), r.ScrapeDate.Format(models.DateLayout),
		); err != nil {
			return fmt.Errorf("postgres: insert %q: %w", r.BusName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}

	pw.logger.Info("[postgres] Stored %d records in bus_records", state.Len())
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

func nullRating(r models.Rating) sql.NullFloat64 {
	return sql.NullFloat64{Float64: r.Value, Valid: r.Valid}
}

func nullSeats(s models.Seats) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(s.Value), Valid: s.Valid}
}
