package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"redbus-scraper/models"
)

// TravelDateLayout is the date format the search site expects in its query string.
const TravelDateLayout = "02-01-2006"

// DefaultRoutes are scraped when no routes file is configured.
var DefaultRoutes = []models.Route{
	{Source: "bangalore", Destination: "chennai"},
	{Source: "bangalore", Destination: "mysore"},
	{Source: "hyderabad", Destination: "bangalore"},
	{Source: "chennai", Destination: "coimbatore"},
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	BaseURL       string
	TravelDate    string
	RoutesFile    string
	Routes        []models.Route
	GovtThreshold int

	RoutePause   time.Duration
	PageSettle   time.Duration
	ScrollStep   int
	ScrollPause  time.Duration
	ScrollSettle time.Duration
	MaxScrolls   int
	MaxRetries   int
	PageTimeout  time.Duration

	Headless  bool
	ChromeBin string

	CSVOutputPath string
	LogFile       string
	LogLevel      string
}

// Load reads the .env file and returns a populated Config struct. The routes
// file, when set, is read as well.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "bus_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		BaseURL:       strings.TrimRight(getEnv("REDBUS_BASE_URL", "https://www.redbus.in"), "/"),
		TravelDate:    getEnv("TRAVEL_DATE", Tomorrow(time.Now())),
		RoutesFile:    getEnv("ROUTES_FILE", ""),
		GovtThreshold: getEnvInt("GOVT_BUS_THRESHOLD", 10),

		RoutePause:   getEnvMillis("ROUTE_PAUSE_MS", 10000),
		PageSettle:   getEnvMillis("PAGE_SETTLE_MS", 5000),
		ScrollStep:   getEnvInt("SCROLL_STEP_PX", 200),
		ScrollPause:  getEnvMillis("SCROLL_PAUSE_MS", 200),
		ScrollSettle: getEnvMillis("SCROLL_SETTLE_MS", 2000),
		MaxScrolls:   getEnvInt("MAX_SCROLL_PASSES", 50),
		MaxRetries:   getEnvInt("MAX_RETRIES", 3),
		PageTimeout:  time.Duration(getEnvInt("PAGE_TIMEOUT_SEC", 120)) * time.Second,

		Headless:  getEnvBool("HEADLESS", true),
		ChromeBin: getEnv("CHROME_BIN", ""),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "bus_data.csv"),
		LogFile:       getEnv("LOG_FILE", "redbus_scraper.log"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.LoadRoutes(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadRoutes fills Routes from RoutesFile, or from DefaultRoutes when unset.
func (c *Config) LoadRoutes() error {
	if c.RoutesFile == "" {
		c.Routes = append([]models.Route(nil), DefaultRoutes...)
		return nil
	}
	routes, err := LoadRoutesFile(c.RoutesFile)
	if err != nil {
		return err
	}
	c.Routes = routes
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// Tomorrow formats the day after now in TravelDateLayout.
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(TravelDateLayout)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvMillis(key string, fallbackMs int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMs)) * time.Millisecond
}
