package redbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redbus-scraper/config"
	"redbus-scraper/utils"
)

// fakeBrowser serves static HTML per URL and reports a scripted page height.
type fakeBrowser struct {
	pages       map[string]string
	navigateErr map[string]error
	docErr      error

	heights []int64 // successive scrollHeight answers; the last one repeats
	measure int
	scrolls int

	current string
	visited []string
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		pages:       make(map[string]string),
		navigateErr: make(map[string]error),
		heights:     []int64{400},
	}
}

func (f *fakeBrowser) Navigate(_ context.Context, url string) error {
	f.visited = append(f.visited, url)
	if err, ok := f.navigateErr[url]; ok {
		return err
	}
	if _, ok := f.pages[url]; !ok {
		return fmt.Errorf("no page for %s", url)
	}
	f.current = url
	return nil
}

func (f *fakeBrowser) Evaluate(_ context.Context, script string, res any) error {
	if script != heightScript {
		f.scrolls++
		return nil
	}
	h := f.heights[len(f.heights)-1]
	if f.measure < len(f.heights) {
		h = f.heights[f.measure]
	}
	f.measure++

	out, ok := res.(*int64)
	if !ok {
		return errors.New("height must decode into *int64")
	}
	*out = h
	return nil
}

func (f *fakeBrowser) Document(context.Context) (Node, error) {
	if f.docErr != nil {
		return nil, f.docErr
	}
	return NewDocument(f.pages[f.current])
}

const testBaseURL = "https://www.redbus.test"

func testConfig() *config.Config {
	return &config.Config{
		BaseURL:    testBaseURL,
		MaxRetries: 1,
		ScrollStep: 200,
		MaxScrolls: 10,
	}
}

func newTestScraper(b Browser) *Scraper {
	s := New(testConfig(), b, utils.NewLogger())
	s.sleep = func(time.Duration) {}
	s.materializer.Sleep = func(time.Duration) {}
	s.retry.Sleep = func(time.Duration) {}
	s.now = func() time.Time { return time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC) }
	return s
}
