package app

import (
	"fmt"
	"log/slog"
	"time"

	"stockbars/internal/logx"
	"stockbars/internal/provider"
	alpacaimpl "stockbars/internal/provider/alpaca"
	"stockbars/internal/saver"
)

// ProvideConfig loads config from the env file at path (for Wire).
func ProvideConfig(path string) (*Config, error) {
	return LoadConfig(path)
}

// ProvideLogger builds the root logger from config (for Wire).
func ProvideLogger(cfg *Config) *slog.Logger {
	return logx.New(cfg.LogLevel, cfg.LogFormat)
}

// ProvideLocation parses the export timezone (for Wire).
func ProvideLocation(cfg *Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.ExportTZ)
	if err != nil {
		return nil, fmt.Errorf("EXPORT_TZ %q: %w", cfg.ExportTZ, err)
	}
	return loc, nil
}

// ProvideBarSaver creates BarSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideBarSaver(cfg *Config, loc *time.Location) (saver.BarSaver, error) {
	s := saver.New(cfg.SaveFormat, loc, cfg.ExtendedColumns)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, txt, json, parquet)", cfg.SaveFormat)
	}
	return s, nil
}

// ProvideAlpacaProvider creates and wires the Alpaca provider (for Wire).
// Caller must call Close() when shutting down. The timeframe string is
// validated here, before any network call.
func ProvideAlpacaProvider(cfg *Config) (*provider.AlpacaProvider, error) {
	return provider.NewAlpacaProvider(alpacaimpl.Options{
		APIKey:     cfg.APIKey,
		APISecret:  cfg.APISecret,
		BaseURL:    cfg.BaseURL,
		DataURL:    cfg.DataURL,
		Feed:       cfg.Feed,
		TimeFrame:  cfg.TimeFrame,
		Adjustment: cfg.Adjustment,
		ChunkDays:  cfg.ChunkDays,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
}
