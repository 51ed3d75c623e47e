package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"stockbars/internal/model"
	"stockbars/internal/saver"
)

// fakeSource serves canned bars per symbol and counts fetch attempts.
type fakeSource struct {
	mu       sync.Mutex
	bars     map[string][]model.Bar
	errs     map[string]error
	attempts map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		bars:     make(map[string][]model.Bar),
		errs:     make(map[string]error),
		attempts: make(map[string]int),
	}
}

func (f *fakeSource) GetBars(symbol string, from, to time.Time) ([]model.Bar, error) {
	f.mu.Lock()
	f.attempts[symbol]++
	f.mu.Unlock()
	if err := f.errs[symbol]; err != nil {
		return nil, err
	}
	return f.bars[symbol], nil
}

func (f *fakeSource) attemptCount(symbol string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[symbol]
}

func minuteBars(n int) []model.Bar {
	start := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	bars := make([]model.Bar, n)
	for i := range bars {
		bars[i] = model.Bar{
			Timestamp: start.Add(time.Duration(i) * time.Minute),
			Open:      100, High: 101, Low: 99, Close: 100.5,
			Volume: uint64(1000 + i),
		}
	}
	return bars
}

func TestExportSymbolWritesFile(t *testing.T) {
	src := newFakeSource()
	src.bars["AAPL"] = minuteBars(3)
	dir := t.TempDir()
	exp := &Exporter{Source: src, Saver: saver.CSVSaver{Loc: time.UTC}, OutDir: dir}

	r := exp.ExportSymbol("AAPL", time.Time{}, time.Time{})
	if r.Status != StatusExported {
		t.Fatalf("status = %s (%s), want exported", r.Status, r.Reason)
	}
	if r.Rows != 3 {
		t.Errorf("rows = %d, want 3", r.Rows)
	}
	if r.Path != filepath.Join(dir, "AAPL.csv") {
		t.Errorf("path = %q", r.Path)
	}
	if _, err := os.Stat(r.Path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
	if want := time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC); !r.First.Equal(want) {
		t.Errorf("first = %v, want %v", r.First, want)
	}
	if want := time.Date(2024, 1, 2, 14, 32, 0, 0, time.UTC); !r.Last.Equal(want) {
		t.Errorf("last = %v, want %v", r.Last, want)
	}
}

func TestExportSymbolEmptyWritesNothing(t *testing.T) {
	src := newFakeSource()
	dir := t.TempDir()
	exp := &Exporter{Source: src, Saver: saver.CSVSaver{Loc: time.UTC}, OutDir: dir}

	r := exp.ExportSymbol("XYZ", time.Time{}, time.Time{})
	if r.Status != StatusSkipped {
		t.Fatalf("status = %s, want skipped", r.Status)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dir not empty: %v", entries)
	}
}

func TestExportSymbolFetchError(t *testing.T) {
	src := newFakeSource()
	src.errs["BAD"] = errors.New("boom")
	dir := t.TempDir()
	exp := &Exporter{Source: src, Saver: saver.CSVSaver{Loc: time.UTC}, OutDir: dir}

	r := exp.ExportSymbol("BAD", time.Time{}, time.Time{})
	if r.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", r.Status)
	}
	if r.Reason != "boom" {
		t.Errorf("reason = %q", r.Reason)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed fetch left files: %v", entries)
	}
}

func TestExportSymbolWriteErrorLeavesNoTemp(t *testing.T) {
	src := newFakeSource()
	src.bars["AAPL"] = minuteBars(2)
	dir := filepath.Join(t.TempDir(), "missing") // never created
	exp := &Exporter{Source: src, Saver: saver.CSVSaver{Loc: time.UTC}, OutDir: dir}

	r := exp.ExportSymbol("AAPL", time.Time{}, time.Time{})
	if r.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", r.Status)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("output dir should not exist, stat err = %v", err)
	}
}

func TestExportSymbolIsIdempotent(t *testing.T) {
	src := newFakeSource()
	src.bars["MSFT"] = minuteBars(5)
	dir := t.TempDir()
	exp := &Exporter{Source: src, Saver: saver.CSVSaver{Loc: time.UTC}, OutDir: dir}

	if r := exp.ExportSymbol("MSFT", time.Time{}, time.Time{}); r.Status != StatusExported {
		t.Fatalf("first run: %s (%s)", r.Status, r.Reason)
	}
	first, err := os.ReadFile(filepath.Join(dir, "MSFT.csv"))
	if err != nil {
		t.Fatal(err)
	}

	if r := exp.ExportSymbol("MSFT", time.Time{}, time.Time{}); r.Status != StatusExported {
		t.Fatalf("second run: %s (%s)", r.Status, r.Reason)
	}
	second, err := os.ReadFile(filepath.Join(dir, "MSFT.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second export differs from first")
	}
}

func TestExportSymbolOverwritesWholesale(t *testing.T) {
	src := newFakeSource()
	src.bars["NVDA"] = minuteBars(10)
	dir := t.TempDir()
	exp := &Exporter{Source: src, Saver: saver.CSVSaver{Loc: time.UTC}, OutDir: dir}

	if r := exp.ExportSymbol("NVDA", time.Time{}, time.Time{}); r.Status != StatusExported {
		t.Fatalf("first run: %s", r.Status)
	}

	// A shorter fetch must fully replace the longer file, not merge with it.
	src.bars["NVDA"] = minuteBars(2)
	if r := exp.ExportSymbol("NVDA", time.Time{}, time.Time{}); r.Rows != 2 {
		t.Fatalf("second run rows = %d", r.Rows)
	}
	data, err := os.ReadFile(filepath.Join(dir, "NVDA.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := bytes.Count(data, []byte("\n"))
	if lines != 3 { // header + 2 rows
		t.Errorf("file has %d lines, want 3", lines)
	}
}
