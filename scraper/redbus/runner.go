package redbus

import (
	"context"
	"fmt"
	"time"

	"redbus-scraper/config"
	"redbus-scraper/models"
	"redbus-scraper/storage"
	"redbus-scraper/utils"
)

// Runner drives the route loop of one run and owns its RunState. A fresh
// Runner starts from an empty state.
type Runner struct {
	scraper *Scraper
	writer  storage.RecordWriter
	logger  *utils.Logger

	baseURL   string
	threshold int
	pause     time.Duration
	sleep     func(time.Duration)

	state   *models.RunState
	visited *utils.SeenSet
	results []RouteResult
}

// NewRunner wires a Runner that persists through writer.
func NewRunner(cfg *config.Config, scraper *Scraper, writer storage.RecordWriter, logger *utils.Logger) *Runner {
	return &Runner{
		scraper:   scraper,
		writer:    writer,
		logger:    logger,
		baseURL:   cfg.BaseURL,
		threshold: cfg.GovtThreshold,
		pause:     cfg.RoutePause,
		sleep:     time.Sleep,
		state:     models.NewRunState(),
		visited:   utils.NewSeenSet(),
	}
}

// Run scrapes routes in order and then persists the collected records once.
//
// The loop ends early as soon as the government sequence holds at least the
// configured threshold of records; only government buses count toward it.
// A failing route is logged and skipped. The returned state is valid even when
// persisting fails; the error then describes the persistence failure.
func (r *Runner) Run(ctx context.Context, routes []models.Route, date string) (*models.RunState, error) {
	for i, route := range routes {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("[runner] Stopping before %s: %v", route.Name(), err)
			break
		}

		link := RouteURL(r.baseURL, route, date)
		if !r.visited.Add(link) {
			r.logger.Warn("[runner] Route %s listed twice — skipping duplicate", route.Name())
			continue
		}

		r.logger.Info("[runner] Scraping route %d/%d: %s", i+1, len(routes), route.Name())
		res, err := r.scraper.ScrapeRoute(ctx, route, date, r.state)
		r.results = append(r.results, res)
		if err != nil {
			r.logger.Error("[runner] Error scraping route %s: %v", route.Name(), err)
		} else {
			r.logger.Info("[runner] %s done — %d found, %d kept, %d unnamed",
				route.Name(), res.Found, res.Kept, res.Skipped)
		}

		if r.threshold > 0 && len(r.state.Government) >= r.threshold {
			r.logger.Info("[runner] Collected %d government buses (threshold %d) — stopping route loop",
				len(r.state.Government), r.threshold)
			break
		}

		if i < len(routes)-1 {
			r.sleep(r.pause)
		}
	}

	r.logger.Info("[runner] Scraping completed! routes: %d | government: %d | private: %d",
		r.visited.Size(), len(r.state.Government), len(r.state.Private))

	if err := r.writer.Write(r.state); err != nil {
		return r.state, fmt.Errorf("persist run: %w", err)
	}
	return r.state, nil
}

// Results returns the per-route outcomes of the last Run, in scrape order.
func (r *Runner) Results() []RouteResult {
	return r.results
}
