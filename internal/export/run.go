package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/schollz/progressbar/v3"

	"stockbars/internal/logx"
	"stockbars/internal/provider"
	"stockbars/internal/saver"
)

// RunOptions configure one export run.
type RunOptions struct {
	OutDir    string
	From      time.Time
	To        time.Time
	Workers   int
	RunID     string
	TimeFrame string
	Progress  bool
	LogLevel  string
}

// Summary totals one export run.
type Summary struct {
	Exported int
	Skipped  int
	Failed   int
	Rows     int
}

// Run exports every symbol exactly once over a bounded worker pool and
// writes the manifest and run report into OutDir. Per-symbol failures are
// recorded and do not stop the run. Closing shutdown lets in-flight symbols
// finish and drops the rest; the report covers what completed.
func Run(dp provider.DataProvider, sv saver.BarSaver, symbols []string, opts RunOptions, shutdown <-chan struct{}) (Summary, error) {
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return Summary{}, fmt.Errorf("create export dir: %w", err)
	}
	if len(symbols) == 0 {
		slog.Info("no symbols to export, skip")
		return Summary{}, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(symbols) {
		workers = len(symbols)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = newProgressBar(len(symbols))
	}

	logs := make(chan string, 2048)
	logger := logx.NewChanLogger(logs, opts.LogLevel)
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		runLogWriter(logs, bar)
	}()

	if p, ok := dp.(*provider.AlpacaProvider); ok {
		p.SetLogFunc(func(msg string) { logger.Info(msg) })
		defer p.SetLogFunc(nil)
	}

	manifest := NewManifest(opts.RunID, opts.From, opts.To, opts.TimeFrame, sv.Extension())
	manifestPath := filepath.Join(opts.OutDir, ManifestFile)
	updates := make(chan Result, len(symbols)+16)
	var manWg sync.WaitGroup
	manWg.Add(1)
	go func() {
		defer manWg.Done()
		RunManifestWriter(manifestPath, manifest, updates)
	}()

	pending := make(chan string, len(symbols))
	for _, s := range symbols {
		pending <- s
	}
	close(pending)

	results := make(chan Result, len(symbols)+64)

	var mu sync.Mutex
	var sum Summary
	var successList, skippedList []string
	var failedList []FailedEntry
	window := opts.From.Format("2006-01-02") + ".." + opts.To.Format("2006-01-02")

	var resWg sync.WaitGroup
	resWg.Add(1)
	go func() {
		defer resWg.Done()
		runResultCollector(results, updates, bar, &mu, &sum, &successList, &skippedList, &failedList, window)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var hbWg sync.WaitGroup
	hbWg.Add(1)
	go func() {
		defer hbWg.Done()
		runHeartbeat(ctx, 30*time.Second, len(symbols), &mu, &sum, logger)
	}()

	exp := &Exporter{Source: dp, Saver: sv, OutDir: opts.OutDir}
	logger.Info("export start", "symbols", len(symbols), "workers", workers, "window", window, "run_id", opts.RunID)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-shutdown:
					return
				case symbol, ok := <-pending:
					if !ok {
						return
					}
					r := exp.ExportSymbol(symbol, opts.From, opts.To)
					switch r.Status {
					case StatusExported:
						logger.Info("export ok", "symbol", r.Symbol, "rows", r.Rows, "file", r.Path)
					case StatusSkipped:
						logger.Info("export skip", "symbol", r.Symbol, "reason", r.Reason)
					default:
						logger.Error("export fail", "symbol", r.Symbol, "window", window, "reason", r.Reason)
					}
					results <- r
				}
			}
		}()
	}
	wg.Wait()
	close(results)
	resWg.Wait()
	cancel()
	hbWg.Wait()

	close(updates)
	manWg.Wait()
	manifest.Finish(time.Now())
	if err := manifest.Write(manifestPath); err != nil {
		logger.Warn("manifest write error", "error", err)
	}

	if bar != nil {
		_ = bar.Exit()
		fmt.Println()
	}

	logger.Info("summary", "exported", sum.Exported, "skipped", sum.Skipped, "failed", sum.Failed, "rows", sum.Rows)
	if len(failedList) > 0 {
		logger.Info("summary failed", "count", len(failedList), "reasons", joinFailedReasons(failedList))
	}

	if err := writeRunReport(opts.OutDir, successList, skippedList, failedList); err != nil {
		logger.Warn("could not write run report", "error", err)
	} else {
		logger.Info("run report saved", "success", len(successList), "skipped", len(skippedList), "failed", len(failedList))
	}

	close(logs)
	logWg.Wait()
	return sum, nil
}
