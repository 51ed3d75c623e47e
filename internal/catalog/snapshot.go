package catalog

import (
	"encoding/csv"
	"os"
	"strconv"

	"stockbars/internal/model"
)

// SnapshotFile is the catalog snapshot written next to the exported data.
const SnapshotFile = "tradable_symbols.csv"

// WriteSnapshot saves the selected assets as a reference CSV, one row per
// asset with all ten catalog attributes.
func WriteSnapshot(assets []model.Asset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	header := []string{"symbol", "name", "exchange", "class", "status",
		"tradable", "marginable", "shortable", "easy_to_borrow", "fractionable"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, a := range assets {
		if err := w.Write([]string{
			a.Symbol,
			a.Name,
			a.Exchange,
			a.Class,
			a.Status,
			strconv.FormatBool(a.Tradable),
			strconv.FormatBool(a.Marginable),
			strconv.FormatBool(a.Shortable),
			strconv.FormatBool(a.EasyToBorrow),
			strconv.FormatBool(a.Fractionable),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
