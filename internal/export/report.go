package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FailedEntry describes one failed symbol in the run report.
type FailedEntry struct {
	Symbol string `json:"symbol"`
	Window string `json:"window"`
	Reason string `json:"reason"`
}

// writeRunReport persists the last run outcome as three plain JSON lists.
// Outcomes with no symbols get their stale file removed instead, so the
// report always describes the most recent run only.
func writeRunReport(dir string, success, skipped []string, failed []FailedEntry) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	sort.Strings(success)
	sort.Strings(skipped)
	sort.Slice(failed, func(i, j int) bool { return failed[i].Symbol < failed[j].Symbol })

	if err := writeListFile(filepath.Join(dir, ".lastrun.success.json"), success, len(success)); err != nil {
		return err
	}
	if err := writeListFile(filepath.Join(dir, ".lastrun.skipped.json"), skipped, len(skipped)); err != nil {
		return err
	}
	return writeListFile(filepath.Join(dir, ".lastrun.failed.json"), failed, len(failed))
}

func writeListFile(path string, v interface{}, n int) error {
	if n == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func appendOnce(list []string, symbol string) []string {
	for _, s := range list {
		if s == symbol {
			return list
		}
	}
	return append(list, symbol)
}

func joinFailedReasons(failed []FailedEntry) string {
	if len(failed) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range failed {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Symbol)
		b.WriteString(": ")
		b.WriteString(f.Reason)
		if i >= 4 && len(failed) > 6 {
			b.WriteString(fmt.Sprintf(" (+%d more)", len(failed)-5))
			break
		}
	}
	return b.String()
}
