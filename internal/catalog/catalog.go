package catalog

import (
	"sort"
	"strings"

	"stockbars/internal/model"
)

// Filter is the asset screen applied to the vendor catalog. String fields
// match case-insensitively and an empty string disables that screen.
// Tradable is always required. Nil pointers leave the tri-state screens off.
type Filter struct {
	Class        string
	Status       string
	Shortable    *bool
	Fractionable *bool
}

// Matches reports whether a passes every enabled screen.
func (f Filter) Matches(a model.Asset) bool {
	if !a.Tradable {
		return false
	}
	if f.Class != "" && !strings.EqualFold(a.Class, f.Class) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(a.Status, f.Status) {
		return false
	}
	if f.Shortable != nil && a.Shortable != *f.Shortable {
		return false
	}
	if f.Fractionable != nil && a.Fractionable != *f.Fractionable {
		return false
	}
	return true
}

// Select returns the assets passing f, sorted by symbol and deduplicated,
// capped at limit when limit > 0.
func Select(assets []model.Asset, f Filter, limit int) []model.Asset {
	out := make([]model.Asset, 0, len(assets))
	seen := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		if !f.Matches(a) {
			continue
		}
		if _, dup := seen[a.Symbol]; dup {
			continue
		}
		seen[a.Symbol] = struct{}{}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Symbols extracts the symbol column.
func Symbols(assets []model.Asset) []string {
	syms := make([]string, len(assets))
	for i, a := range assets {
		syms[i] = a.Symbol
	}
	return syms
}
