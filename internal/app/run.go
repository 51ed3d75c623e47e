package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"stockbars/internal/catalog"
	"stockbars/internal/export"
	"stockbars/internal/provider"
	"stockbars/internal/saver"
)

// App bundles the wired dependencies for one run.
type App struct {
	Config   *Config
	Logger   *slog.Logger
	Location *time.Location
	Saver    saver.BarSaver
	Provider provider.DataProvider
}

// Run executes one full export: account preflight, symbol selection,
// catalog snapshot, then the bar export over the worker pool. Per-symbol
// problems are reported, not returned; an error here means the run could
// not happen at all.
func (a *App) Run() error {
	slog.SetDefault(a.Logger)
	defer a.Provider.Close()

	acct, err := a.Provider.VerifyAccount()
	if err != nil {
		return fmt.Errorf("account check failed: %w", err)
	}
	slog.Info("account ok",
		"provider", a.Provider.GetName(),
		"status", acct.Status,
		"currency", acct.Currency,
		"cash", acct.Cash.StringFixed(2),
		"equity", acct.Equity.StringFixed(2))
	if acct.Blocked {
		slog.Warn("account is blocked; market data may still be served")
	}

	symbols, err := a.selectSymbols()
	if err != nil {
		return err
	}
	if len(symbols) == 0 {
		slog.Info("no symbols selected, nothing to export")
		return nil
	}

	from, to := export.Window(time.Now(), a.Config.LookbackDays, a.Location)
	runID := uuid.NewString()
	slog.Info("export run",
		"run_id", runID,
		"symbols", len(symbols),
		"window", from.Format("2006-01-02")+".."+to.Format("2006-01-02"),
		"timeframe", a.Config.TimeFrame,
		"format", a.Saver.Extension(),
		"dir", a.Config.OutDir(),
		"workers", a.Config.Workers)

	shutdown := make(chan struct{})
	go watchSignals(shutdown)

	sum, err := export.Run(a.Provider, a.Saver, symbols, export.RunOptions{
		OutDir:    a.Config.OutDir(),
		From:      from,
		To:        to,
		Workers:   a.Config.Workers,
		RunID:     runID,
		TimeFrame: a.Config.TimeFrame,
		Progress:  true,
		LogLevel:  a.Config.LogLevel,
	}, shutdown)
	if err != nil {
		return err
	}

	slog.Info("export done",
		"exported", sum.Exported,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
		"rows", sum.Rows,
		"run_id", runID)
	return nil
}

// selectSymbols resolves the run's symbol list: either the local override
// file, or the vendor catalog screened by the configured filter. The
// filtered catalog is snapshotted next to the data for reference.
func (a *App) selectSymbols() ([]string, error) {
	cfg := a.Config

	if cfg.SymbolsFile != "" {
		symbols, err := catalog.LoadSymbolsFile(cfg.SymbolsFile)
		if err != nil {
			return nil, fmt.Errorf("symbols file: %w", err)
		}
		if cfg.MaxSymbols > 0 && len(symbols) > cfg.MaxSymbols {
			symbols = symbols[:cfg.MaxSymbols]
		}
		slog.Info("symbols loaded from file", "file", cfg.SymbolsFile, "count", len(symbols))
		return symbols, nil
	}

	assets, err := a.Provider.ListAssets(cfg.AssetStatus, cfg.AssetClass)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	selected := catalog.Select(assets, cfg.Filter(), cfg.MaxSymbols)
	slog.Info("symbols selected", "catalog", len(assets), "selected", len(selected))

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if err := catalog.WriteSnapshot(selected, cfg.SnapshotPath()); err != nil {
		slog.Warn("could not write catalog snapshot", "path", cfg.SnapshotPath(), "error", err)
	} else {
		slog.Info("catalog snapshot saved", "path", cfg.SnapshotPath(), "assets", len(selected))
	}

	return catalog.Symbols(selected), nil
}

// watchSignals closes shutdown on the first SIGINT/SIGTERM so workers finish
// their in-flight symbol and stop. A second signal exits immediately.
func watchSignals(shutdown chan struct{}) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	sig := <-signals
	slog.Info("received signal, graceful shutdown", "sig", sig)
	close(shutdown)

	sig = <-signals
	slog.Error("received second signal, exiting now", "sig", sig)
	os.Exit(1)
}
