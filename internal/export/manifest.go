package export

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// ManifestFile is the per-run output index written into the export dir.
const ManifestFile = ".manifest.json"

// ManifestEntry describes one exported file.
type ManifestEntry struct {
	Rows  int    `json:"rows"`
	First string `json:"first"`
	Last  string `json:"last"`
	File  string `json:"file"`
}

// Manifest indexes one run's output. It is regenerated from scratch every
// run; it is not an incremental merge state.
type Manifest struct {
	RunID      string                   `json:"run_id"`
	StartedAt  time.Time                `json:"started_at"`
	FinishedAt *time.Time               `json:"finished_at,omitempty"`
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	TimeFrame  string                   `json:"timeframe"`
	Format     string                   `json:"format"`
	Exported   map[string]ManifestEntry `json:"exported"`
	Skipped    []string                 `json:"skipped,omitempty"`
	Failed     map[string]string        `json:"failed,omitempty"`
}

// NewManifest starts an empty manifest for one run.
func NewManifest(runID string, from, to time.Time, timeframe, format string) *Manifest {
	return &Manifest{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
		From:      from.Format("2006-01-02"),
		To:        to.Format("2006-01-02"),
		TimeFrame: timeframe,
		Format:    format,
		Exported:  make(map[string]ManifestEntry),
		Failed:    make(map[string]string),
	}
}

// Apply records one symbol result.
func (m *Manifest) Apply(r Result) {
	switch r.Status {
	case StatusExported:
		m.Exported[r.Symbol] = ManifestEntry{
			Rows:  r.Rows,
			First: r.First.UTC().Format(time.RFC3339),
			Last:  r.Last.UTC().Format(time.RFC3339),
			File:  r.Path,
		}
	case StatusSkipped:
		m.Skipped = append(m.Skipped, r.Symbol)
	case StatusFailed:
		m.Failed[r.Symbol] = r.Reason
	}
}

// Finish stamps the completion time.
func (m *Manifest) Finish(at time.Time) {
	t := at.UTC()
	m.FinishedAt = &t
}

// Write persists the manifest.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RunManifestWriter receives results and persists the manifest after each
// update (run as goroutine).
func RunManifestWriter(path string, m *Manifest, updates <-chan Result) {
	for r := range updates {
		m.Apply(r)
		if err := m.Write(path); err != nil {
			slog.Warn("manifest write error", "error", err)
		}
	}
}
