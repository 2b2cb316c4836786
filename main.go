package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"redbus-scraper/config"
	"redbus-scraper/scraper/redbus"
	"redbus-scraper/services"
	"redbus-scraper/storage"
	"redbus-scraper/utils"
)

var flags struct {
	routes    string
	date      string
	output    string
	threshold int
	postgres  bool
}

var rootCmd = &cobra.Command{
	Use:          "redbus-scraper",
	Short:        "Scrapes bus listings for a set of routes and saves them as CSV.",
	SilenceUsage: true,
	RunE:         runScrape,
}

func init() {
	rootCmd.Flags().StringVar(&flags.routes, "routes", "", "routes to scrape, e.g. bangalore:chennai,hyderabad:bangalore (overrides ROUTES_FILE)")
	rootCmd.Flags().StringVar(&flags.date, "date", "", "travel date as DD-MM-YYYY (default tomorrow)")
	rootCmd.Flags().StringVar(&flags.output, "output", "", "CSV output path (overrides CSV_OUTPUT_PATH)")
	rootCmd.Flags().IntVar(&flags.threshold, "threshold", 0, "stop after this many government buses, 0 disables (overrides GOVT_BUS_THRESHOLD)")
	rootCmd.Flags().BoolVar(&flags.postgres, "postgres", false, "also store records in PostgreSQL")
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("routes") {
		routes, err := config.ParseRouteList(flags.routes)
		if err != nil {
			return nil, err
		}
		cfg.Routes = routes
	}
	if f.Changed("date") {
		cfg.TravelDate = flags.date
	}
	if f.Changed("output") {
		cfg.CSVOutputPath = flags.output
	}
	if f.Changed("threshold") {
		cfg.GovtThreshold = flags.threshold
	}
	if f.Changed("postgres") {
		cfg.PostgresEnabled = flags.postgres
	}
	return cfg, nil
}

func runScrape(cmd *cobra.Command, _ []string) error {
	logger := utils.NewLogger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger.SetLevel(utils.ParseLevel(cfg.LogLevel))
	if cfg.LogFile != "" {
		if err := logger.AttachFile(cfg.LogFile); err != nil {
			logger.Warn("Logging to console only: %v", err)
		}
	}
	defer logger.Close()

	logger.Info("=== Bus Scraping System starting ===")
	logger.Info("Config — routes: %d | date: %s | govt threshold: %d | route pause: %v | output: %s",
		len(cfg.Routes), cfg.TravelDate, cfg.GovtThreshold, cfg.RoutePause, cfg.CSVOutputPath)

	writers := []storage.RecordWriter{storage.NewCSVWriter(cfg.CSVOutputPath, logger)}
	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Check POSTGRES_HOST/POSTGRES_PORT or run without --postgres")
			return err
		}
		writers = append(writers, pgWriter)
	}
	writer := storage.NewMultiWriter(writers...)
	defer writer.Close()

	browser, chromeBin, err := redbus.NewChrome(cfg)
	if err != nil {
		logger.Error("Failed to start browser (binary %q): %v", chromeBin, err)
		return err
	}
	defer browser.Close()
	logger.Info("Using browser binary: %s", chromeBin)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := redbus.NewRunner(cfg, redbus.New(cfg, browser, logger), writer, logger)
	state, runErr := runner.Run(ctx, cfg.Routes, cfg.TravelDate)

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(cmd.OutOrStdout(), insightSvc.Generate(state.All()))

	logger.Info("Total government buses found: %d", len(state.Government))
	logger.Info("Total private buses found: %d", len(state.Private))

	if runErr != nil {
		logger.Error("Scraping completed but saving failed: %v", runErr)
		return runErr
	}
	return nil
}
