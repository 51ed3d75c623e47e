package saver

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"stockbars/internal/model"
)

// CSVSaver writes one row per bar with the timestamp split into separate
// date and time columns in Loc (header: date,time,open,high,low,close,volume).
// Extended appends trade_count and vwap columns.
type CSVSaver struct {
	Loc      *time.Location
	Extended bool
	Ext      string // extension override, default "csv"
}

func (s CSVSaver) Extension() string {
	if s.Ext != "" {
		return s.Ext
	}
	return "csv"
}

func (s CSVSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	header := []string{"date", "time", "open", "high", "low", "close", "volume"}
	if s.Extended {
		header = append(header, "trade_count", "vwap")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}
	row := make([]string, 0, len(header))
	for _, b := range bars {
		ts := b.Timestamp.In(loc)
		row = append(row[:0],
			ts.Format("2006-01-02"),
			ts.Format("15:04:05"),
			priceStr(b.Open),
			priceStr(b.High),
			priceStr(b.Low),
			priceStr(b.Close),
			strconv.FormatUint(b.Volume, 10),
		)
		if s.Extended {
			row = append(row, strconv.FormatUint(b.TradeCount, 10), priceStr(b.VWAP))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// priceStr renders a price without binary float artifacts (100.5 not 100.50000000000001).
func priceStr(f float64) string { return decimal.NewFromFloat(f).String() }
