package redbus

import (
	"context"
	"fmt"
	"time"

	"redbus-scraper/utils"
)

const heightScript = `document.body.scrollHeight`

// Materializer scrolls a lazily loaded listing page until its height stops
// growing, so that every listing is present in the document before extraction.
//
// Pages that load content without changing their measured height (virtualized
// lists) converge after the first pass and are only partially materialized.
type Materializer struct {
	Step        int           // pixels per scroll increment
	StepPause   time.Duration // pause after each increment
	SettlePause time.Duration // pause before re-measuring the height
	MaxPasses   int           // guard against pages that never stop growing; 0 means unbounded

	Logger *utils.Logger
	Sleep  func(time.Duration)
}

// Materialize runs scroll passes over b and returns the final page height.
func (m *Materializer) Materialize(ctx context.Context, b Browser) (int64, error) {
	step := m.Step
	if step <= 0 {
		step = 200
	}
	sleep := m.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	last, err := pageHeight(ctx, b)
	if err != nil {
		return 0, err
	}

	for pass := 1; ; pass++ {
		for y := int64(0); y < last; y += int64(step) {
			if err := b.Evaluate(ctx, fmt.Sprintf("window.scrollTo(0, %d)", y), nil); err != nil {
				return last, fmt.Errorf("scroll to %d: %w", y, err)
			}
			sleep(m.StepPause)
		}

		sleep(m.SettlePause)
		height, err := pageHeight(ctx, b)
		if err != nil {
			return last, err
		}
		if height <= last {
			m.Logger.Debug("[materialize] Page settled at %dpx after %d passes", last, pass)
			return last, nil
		}
		last = height

		if m.MaxPasses > 0 && pass >= m.MaxPasses {
			m.Logger.Warn("[materialize] Page still growing after %d passes (%dpx) — extracting what is loaded",
				pass, last)
			return last, nil
		}
	}
}

func pageHeight(ctx context.Context, b Browser) (int64, error) {
	var h int64
	if err := b.Evaluate(ctx, heightScript, &h); err != nil {
		return 0, fmt.Errorf("measure page height: %w", err)
	}
	return h, nil
}
