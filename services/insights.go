package services

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"redbus-scraper/models"
	"redbus-scraper/utils"
)

const topRatedLimit = 5

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate summarises records by category and by route, in first-seen order.
func (s *InsightService) Generate(records []models.BusRecord) *models.RunReport {
	report := &models.RunReport{}
	if len(records) == 0 {
		return report
	}

	report.TotalBuses = len(records)

	byCategory := newGrouper()
	byRoute := newGrouper()
	var rated []models.BusRecord

	for _, r := range records {
		if r.Category() == models.Government {
			report.GovernmentBuses++
		} else {
			report.PrivateBuses++
		}
		byCategory.add(string(r.Category()), r)
		byRoute.add(r.RouteName, r)
		if r.StarRating.Valid {
			rated = append(rated, r)
		}
	}

	report.ByCategory = byCategory.summaries()
	report.ByRoute = byRoute.summaries()

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].StarRating.Value > rated[j].StarRating.Value
	})
	if len(rated) > topRatedLimit {
		rated = rated[:topRatedLimit]
	}
	report.TopRated = rated

	s.logger.Debug("[insights] %d buses across %d routes", report.TotalBuses, len(report.ByRoute))
	return report
}

// Print renders the report as tables on w.
func (s *InsightService) Print(w io.Writer, r *models.RunReport) {
	fmt.Fprintf(w, "\n  BUS SCRAPE SUMMARY — %d buses (%d government, %d private)\n\n",
		r.TotalBuses, r.GovernmentBuses, r.PrivateBuses)

	if r.TotalBuses == 0 {
		fmt.Fprintln(w, "  No buses collected")
		return
	}

	renderGroups(w, "Category", r.ByCategory)
	renderGroups(w, "Route", r.ByRoute)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Top rated buses")
	t.AppendHeader(table.Row{"#", "Bus", "Route", "Type", "Rating"})
	for i, b := range r.TopRated {
		t.AppendRow(table.Row{i + 1, truncate(b.BusName, 38), b.RouteName, truncate(b.BusType, 24), b.StarRating})
	}
	if len(r.TopRated) == 0 {
		t.AppendRow(table.Row{"-", "No rated buses found", "", "", ""})
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderGroups(w io.Writer, title string, groups []models.GroupSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{title, "Buses", "Average price", "Total seats"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, g := range groups {
		avg := "-"
		if g.PricedBuses > 0 {
			avg = fmt.Sprintf("%.2f", g.AveragePrice)
		}
		t.AppendRow(table.Row{g.Name, g.Buses, avg, g.TotalSeats})
	}
	t.Render()
	fmt.Fprintln(w)
}

type grouper struct {
	order  []string
	groups map[string]*models.GroupSummary
	totals map[string]float64
}

func newGrouper() *grouper {
	return &grouper{
		groups: make(map[string]*models.GroupSummary),
		totals: make(map[string]float64),
	}
}

func (g *grouper) add(key string, r models.BusRecord) {
	sum, ok := g.groups[key]
	if !ok {
		sum = &models.GroupSummary{Name: key}
		g.groups[key] = sum
		g.order = append(g.order, key)
	}
	sum.Buses++
	if r.SeatsAvailable.Valid {
		sum.TotalSeats += r.SeatsAvailable.Value
	}
	if price, ok := NumericPrice(r.Price); ok {
		sum.PricedBuses++
		g.totals[key] += price
	}
}

func (g *grouper) summaries() []models.GroupSummary {
	out := make([]models.GroupSummary, 0, len(g.order))
	for _, key := range g.order {
		sum := *g.groups[key]
		if sum.PricedBuses > 0 {
			sum.AveragePrice = round2(g.totals[key] / float64(sum.PricedBuses))
		}
		out = append(out, sum)
	}
	return out
}

// NumericPrice reads a cleaned price such as "1,299" or "850.50" as a number.
func NumericPrice(price string) (float64, bool) {
	val, err := strconv.ParseFloat(strings.ReplaceAll(price, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
