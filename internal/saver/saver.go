package saver

import (
	"strings"
	"time"

	"stockbars/internal/model"
)

// BarSaver is the abstraction for persisting one symbol's bars to a file.
// High-level (main) injects the implementation; the exporter depends only
// on this interface.
type BarSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// New creates an implementation by format (csv, txt, json, parquet).
// Returns nil if format not supported.
func New(format string, loc *time.Location, extended bool) BarSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{Loc: loc, Extended: extended}
	case "txt":
		return CSVSaver{Loc: loc, Extended: extended, Ext: "txt"}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
