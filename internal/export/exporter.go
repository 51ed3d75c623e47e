package export

import (
	"os"
	"path/filepath"
	"time"

	"stockbars/internal/model"
	"stockbars/internal/saver"
)

// Export outcome per symbol.
const (
	StatusExported = "exported"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
)

// Result is sent by workers for fan-in.
type Result struct {
	Symbol string
	Status string
	Rows   int
	Path   string
	Reason string
	First  time.Time
	Last   time.Time
}

// BarSource is the slice of the provider the exporter needs.
type BarSource interface {
	GetBars(symbol string, from, to time.Time) ([]model.Bar, error)
}

// Exporter writes one file per symbol: fetch the whole window, replace the
// file wholesale. It never reads or merges previous output.
type Exporter struct {
	Source BarSource
	Saver  saver.BarSaver
	OutDir string
}

// ExportSymbol fetches bars for [from, to] and writes them to
// OutDir/SYMBOL.ext. The data lands in a temp file first and is renamed into
// place, so a failed write never leaves a truncated file and readers never
// see a partial one. No data → no file, symbol skipped.
func (e *Exporter) ExportSymbol(symbol string, from, to time.Time) Result {
	bars, err := e.Source.GetBars(symbol, from, to)
	if err != nil {
		return Result{Symbol: symbol, Status: StatusFailed, Reason: err.Error()}
	}
	if len(bars) == 0 {
		return Result{Symbol: symbol, Status: StatusSkipped, Reason: "no data"}
	}

	path := filepath.Join(e.OutDir, symbol+"."+e.Saver.Extension())
	tmp := path + ".tmp"
	if err := e.Saver.Save(bars, tmp); err != nil {
		os.Remove(tmp)
		return Result{Symbol: symbol, Status: StatusFailed, Reason: "write: " + err.Error()}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return Result{Symbol: symbol, Status: StatusFailed, Reason: "rename: " + err.Error()}
	}
	return Result{
		Symbol: symbol,
		Status: StatusExported,
		Rows:   len(bars),
		Path:   path,
		First:  bars[0].Timestamp,
		Last:   bars[len(bars)-1].Timestamp,
	}
}
