package redbus

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"redbus-scraper/config"
	"redbus-scraper/models"
	"redbus-scraper/services"
	"redbus-scraper/utils"
)

var errNoBusName = errors.New("listing has no bus name")

// RouteResult counts what happened to the listings of one route.
type RouteResult struct {
	URL     string
	Found   int
	Kept    int
	Skipped int
}

// Scraper extracts bus records from the search results of one route at a time.
type Scraper struct {
	browser      Browser
	logger       *utils.Logger
	retry        *utils.RetryConfig
	materializer *Materializer

	baseURL    string
	pageSettle time.Duration
	sleep      func(time.Duration)
	now        func() time.Time
}

// New creates a route Scraper driving browser.
func New(cfg *config.Config, browser Browser, logger *utils.Logger) *Scraper {
	return &Scraper{
		browser: browser,
		logger:  logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		materializer: &Materializer{
			Step:        cfg.ScrollStep,
			StepPause:   cfg.ScrollPause,
			SettlePause: cfg.ScrollSettle,
			MaxPasses:   cfg.MaxScrolls,
			Logger:      logger,
		},
		baseURL:    cfg.BaseURL,
		pageSettle: cfg.PageSettle,
		sleep:      time.Sleep,
		now:        time.Now,
	}
}

// RouteURL builds the search URL of a route on a travel date.
func RouteURL(baseURL string, r models.Route, date string) string {
	return fmt.Sprintf("%s/bus-tickets/%s-to-%s?date=%s",
		strings.TrimRight(baseURL, "/"), slug(r.Source), slug(r.Destination), url.QueryEscape(date))
}

func slug(city string) string {
	return strings.Join(strings.Fields(strings.ToLower(city)), "-")
}

// ScrapeRoute loads the results page of route on date and appends every named
// listing to state. Listings without a bus name are skipped. An error means the page itself could
// not be loaded or enumerated; state is then left untouched.
func (s *Scraper) ScrapeRoute(ctx context.Context, route models.Route, date string, state *models.RunState) (RouteResult, error) {
	link := RouteURL(s.baseURL, route, date)
	res := RouteResult{URL: link}
	s.logger.Info("[redbus] Scraping URL: %s", link)

	err := s.retry.Do(ctx, "load "+route.Name(), func() error {
		return s.browser.Navigate(ctx, link)
	})
	if err != nil {
		return res, fmt.Errorf("load %s: %w", link, err)
	}
	s.sleep(s.pageSettle)

	if _, err := s.materializer.Materialize(ctx, s.browser); err != nil {
		return res, fmt.Errorf("materialize %s: %w", link, err)
	}

	doc, err := s.browser.Document(ctx)
	if err != nil {
		return res, fmt.Errorf("read document %s: %w", link, err)
	}
	items, err := findItems(doc, itemSelectors)
	if err != nil {
		return res, fmt.Errorf("enumerate listings %s: %w", link, err)
	}
	res.Found = len(items)
	s.logger.Info("[redbus] Found %d buses", len(items))

	now := s.now()
	scrapedAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	batch := make([]models.BusRecord, 0, len(items))
	for i, item := range items {
		rec, err := s.extractRecord(item, route, link, scrapedAt)
		switch {
		case errors.Is(err, errNoBusName):
			res.Skipped++
			s.logger.Debug("[redbus] Listing %d on %s has no bus name — skipped", i+1, route.Name())
			continue
		case err != nil:
			s.logger.Error("[redbus] Error scraping individual bus %d on %s: %v", i+1, route.Name(), err)
			continue
		}

		batch = append(batch, rec)
		if rec.Category() == models.Government {
			s.logger.Info("[redbus] Added government bus: %s", rec.BusName)
		} else {
			s.logger.Info("[redbus] Added private bus: %s", rec.BusName)
		}
	}

	state.Merge(batch)
	res.Kept = len(batch)
	return res, nil
}

// extractRecord reads and normalizes one listing. Each field is extracted on
// its own so a missing field never hides the others. FirstText absorbs locator
// panics; the recover covers everything else.
func (s *Scraper) extractRecord(item Node, route models.Route, link string, scrapedAt time.Time) (rec models.BusRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while extracting: %v", r)
		}
	}()

	name := FirstText(item, nameLocators...)
	if name == "" {
		return rec, errNoBusName
	}

	rec = models.BusRecord{
		RouteName:      route.Name(),
		RouteLink:      link,
		BusName:        name,
		BusType:        services.ClassifyBusType(FirstText(item, busTypeLocators...)),
		DepartingTime:  FirstText(item, departureLocators...),
		Duration:       FirstText(item, durationLocators...),
		ReachingTime:   FirstText(item, arrivalLocators...),
		StarRating:     services.ParseRating(FirstText(item, ratingLocators...)),
		Price:          services.CleanPrice(FirstText(item, priceLocators...)),
		SeatsAvailable: services.ParseSeats(FirstText(item, seatsLocators...)),
		ScrapeDate:     scrapedAt,
	}
	return rec, nil
}
