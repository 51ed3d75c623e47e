package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// runLogWriter drains fan-in log lines to stdout, clearing the progress bar
// first so lines do not tear through it.
func runLogWriter(lines <-chan string, bar *progressbar.ProgressBar) {
	for s := range lines {
		if bar != nil {
			_ = bar.Clear()
		}
		fmt.Println(s)
	}
}

func runHeartbeat(ctx context.Context, interval time.Duration, total int, mu *sync.Mutex, sum *Summary, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			s := *sum
			mu.Unlock()
			logger.Info("heartbeat", "done", s.Exported+s.Skipped+s.Failed, "total", total,
				"exported", s.Exported, "skipped", s.Skipped, "failed", s.Failed, "rows", s.Rows)
		}
	}
}

func runResultCollector(
	results <-chan Result,
	updates chan<- Result,
	bar *progressbar.ProgressBar,
	mu *sync.Mutex,
	sum *Summary,
	successList, skippedList *[]string,
	failedList *[]FailedEntry,
	window string,
) {
	for r := range results {
		mu.Lock()
		switch r.Status {
		case StatusExported:
			sum.Exported++
			sum.Rows += r.Rows
			*successList = appendOnce(*successList, r.Symbol)
		case StatusSkipped:
			sum.Skipped++
			*skippedList = appendOnce(*skippedList, r.Symbol)
		default:
			sum.Failed++
			*failedList = append(*failedList, FailedEntry{Symbol: r.Symbol, Window: window, Reason: r.Reason})
		}
		mu.Unlock()
		if bar != nil {
			_ = bar.Add(1)
		}
		select {
		case updates <- r:
		default:
			slog.Warn("manifest channel full, skip update", "symbol", r.Symbol)
		}
	}
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Exporting bars..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
