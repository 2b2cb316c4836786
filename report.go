package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"redbus-scraper/models"
	"redbus-scraper/services"
	"redbus-scraper/storage"
	"redbus-scraper/utils"
)

var reportFlags struct {
	input      string
	out        string
	categories []string
	routes     []string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the buses of a saved CSV, filtered by category and route.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := utils.NewLogger()
		logger.SetLevel(utils.LevelWarn)

		records, err := storage.ReadCSV(reportFlags.input)
		if err != nil {
			return err
		}
		filtered := services.Filter(records, reportFlags.categories, reportFlags.routes)

		out := cmd.OutOrStdout()
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetTitle("Filtered bus information")
		t.AppendHeader(table.Row{"Route", "Category", "Bus", "Departs", "Arrives", "Seats", "Price"})
		for _, r := range filtered {
			t.AppendRow(table.Row{r.RouteName, r.Category(), r.BusName, r.DepartingTime, r.ReachingTime, r.SeatsAvailable, r.Price})
		}
		t.Render()
		fmt.Fprintf(out, "%d of %d buses match\n", len(filtered), len(records))

		if reportFlags.out != "" && len(filtered) == 0 {
			fmt.Fprintf(out, "Nothing to save, %s not written\n", reportFlags.out)
		} else if reportFlags.out != "" {
			if err := writeFiltered(reportFlags.out, filtered, logger); err != nil {
				return err
			}
			fmt.Fprintf(out, "Filtered data written to %s\n", reportFlags.out)
		}

		insightSvc := services.NewInsightService(logger)
		insightSvc.Print(out, insightSvc.Generate(filtered))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.input, "input", "bus_data.csv", "CSV file written by a scrape")
	reportCmd.Flags().StringVar(&reportFlags.out, "out", "", "also save the filtered buses to this CSV file")
	reportCmd.Flags().StringSliceVar(&reportFlags.categories, "category", nil, "Government and/or Private (repeatable)")
	reportCmd.Flags().StringSliceVar(&reportFlags.routes, "route", nil, `route name such as "Bangalore to Chennai" (repeatable)`)
}

// writeFiltered saves records with the same schema as a scrape, government
// buses first.
func writeFiltered(path string, records []models.BusRecord, logger *utils.Logger) error {
	state := models.NewRunState()
	state.Merge(records)
	return storage.NewCSVWriter(path, logger).Write(state)
}
