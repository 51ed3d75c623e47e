package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stockbars/internal/catalog"
)

const defaultBaseURL = "https://paper-api.alpaca.markets"

// Config holds application configuration from env.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	DataURL   string
	Feed      string // iex | sip | otc

	DataDir    string
	SaveFormat string // csv | txt | json | parquet

	TimeFrame    string
	LookbackDays int
	ChunkDays    int
	Adjustment   string // raw | split | dividend | all

	Workers    int
	MaxRetries int
	RetryDelay time.Duration

	AssetClass       string
	AssetStatus      string
	ShortableOnly    bool
	FractionableOnly bool
	MaxSymbols       int
	SymbolsFile      string

	ExportTZ        string
	ExtendedColumns bool

	LogLevel  string // debug | info | warn | error
	LogFormat string // text | json
}

// LoadConfig loads the .env file at path into the environment and reads the
// configuration from it. The file is required: running against a brokerage
// account on guessed or inherited credentials is never what anyone wants.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	var problems []string
	cfg := &Config{
		APIKey:    os.Getenv("ALPACA_API_KEY"),
		APISecret: os.Getenv("ALPACA_API_SECRET"),
		BaseURL:   getEnv("ALPACA_BASE_URL", defaultBaseURL),
		DataURL:   os.Getenv("ALPACA_DATA_URL"),
		Feed:      strings.ToLower(getEnv("ALPACA_FEED", "iex")),

		DataDir:    getEnv("DATA_DIR", "data"),
		SaveFormat: strings.ToLower(getEnv("SAVE_FORMAT", "csv")),

		TimeFrame:  getEnv("TIMEFRAME", "1Min"),
		Adjustment: strings.ToLower(getEnv("ADJUSTMENT", "split")),

		AssetClass:  getEnv("ASSET_CLASS", "us_equity"),
		AssetStatus: getEnv("ASSET_STATUS", "active"),
		SymbolsFile: os.Getenv("SYMBOLS_FILE"),

		ExportTZ: getEnv("EXPORT_TZ", "America/New_York"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
	cfg.LookbackDays = getEnvInt("LOOKBACK_DAYS", 30, &problems)
	cfg.ChunkDays = getEnvInt("CHUNK_DAYS", 30, &problems)
	cfg.Workers = getEnvInt("WORKERS", 1, &problems)
	cfg.MaxRetries = getEnvInt("MAX_RETRIES", 5, &problems)
	cfg.RetryDelay = time.Duration(getEnvInt("RETRY_DELAY", 10, &problems)) * time.Second
	cfg.MaxSymbols = getEnvInt("MAX_SYMBOLS", 0, &problems)
	cfg.ShortableOnly = getEnvBool("SHORTABLE_ONLY", true, &problems)
	cfg.FractionableOnly = getEnvBool("FRACTIONABLE_ONLY", false, &problems)
	cfg.ExtendedColumns = getEnvBool("EXTENDED_COLUMNS", false, &problems)

	problems = append(problems, cfg.check()...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int, problems *[]string) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("%s: not a number (%q)", key, v))
		return def
	}
	return n
}

func getEnvBool(key string, def bool, problems *[]string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("%s: not a bool (%q)", key, v))
		return def
	}
	return b
}

func (c *Config) check() []string {
	var problems []string
	if c.APIKey == "" {
		problems = append(problems, "ALPACA_API_KEY not set")
	}
	if c.APISecret == "" {
		problems = append(problems, "ALPACA_API_SECRET not set")
	}
	switch c.SaveFormat {
	case "csv", "txt", "json", "parquet":
	default:
		problems = append(problems, fmt.Sprintf("SAVE_FORMAT: %q (use: csv, txt, json, parquet)", c.SaveFormat))
	}
	switch c.Adjustment {
	case "raw", "split", "dividend", "all":
	default:
		problems = append(problems, fmt.Sprintf("ADJUSTMENT: %q (use: raw, split, dividend, all)", c.Adjustment))
	}
	switch c.Feed {
	case "iex", "sip", "otc":
	default:
		problems = append(problems, fmt.Sprintf("ALPACA_FEED: %q (use: iex, sip, otc)", c.Feed))
	}
	if c.LookbackDays < 1 {
		problems = append(problems, "LOOKBACK_DAYS must be >= 1")
	}
	if c.ChunkDays < 1 {
		problems = append(problems, "CHUNK_DAYS must be >= 1")
	}
	if c.Workers < 1 {
		problems = append(problems, "WORKERS must be >= 1")
	}
	if c.MaxSymbols < 0 {
		problems = append(problems, "MAX_SYMBOLS must be >= 0")
	}
	if c.RetryDelay < 0 {
		problems = append(problems, "RETRY_DELAY must be >= 0")
	}
	if _, err := time.LoadLocation(c.ExportTZ); err != nil {
		problems = append(problems, fmt.Sprintf("EXPORT_TZ: %v", err))
	}
	return problems
}

// OutDir returns the export directory for the configured timeframe, e.g.
// data/1min.
func (c *Config) OutDir() string {
	return filepath.Join(c.DataDir, strings.ToLower(strings.TrimSpace(c.TimeFrame)))
}

// SnapshotPath returns the catalog snapshot location.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, catalog.SnapshotFile)
}

// Filter builds the catalog screen from config.
func (c *Config) Filter() catalog.Filter {
	f := catalog.Filter{Class: c.AssetClass, Status: c.AssetStatus}
	if c.ShortableOnly {
		t := true
		f.Shortable = &t
	}
	if c.FractionableOnly {
		t := true
		f.Fractionable = &t
	}
	return f
}
