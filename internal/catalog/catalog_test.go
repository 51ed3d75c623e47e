package catalog

import (
	"reflect"
	"testing"

	"stockbars/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func defaultFilter() Filter {
	return Filter{Class: "us_equity", Status: "active", Shortable: boolPtr(true)}
}

func TestFilterMatches(t *testing.T) {
	base := model.Asset{
		Symbol: "AAPL", Class: "us_equity", Status: "active",
		Tradable: true, Shortable: true,
	}

	cases := []struct {
		name   string
		filter Filter
		mutate func(*model.Asset)
		want   bool
	}{
		{"all screens pass", defaultFilter(), func(a *model.Asset) {}, true},
		{"not shortable", defaultFilter(), func(a *model.Asset) { a.Symbol = "XYZ"; a.Shortable = false }, false},
		{"not tradable", defaultFilter(), func(a *model.Asset) { a.Tradable = false }, false},
		{"inactive", defaultFilter(), func(a *model.Asset) { a.Status = "inactive" }, false},
		{"wrong class", defaultFilter(), func(a *model.Asset) { a.Class = "crypto" }, false},
		{"class is case-insensitive", defaultFilter(), func(a *model.Asset) { a.Class = "US_EQUITY" }, true},
		{"shortable screen off keeps non-shortable", Filter{Class: "us_equity", Status: "active"},
			func(a *model.Asset) { a.Shortable = false }, true},
		{"fractionable screen on", Filter{Class: "us_equity", Status: "active", Fractionable: boolPtr(true)},
			func(a *model.Asset) { a.Fractionable = false }, false},
		{"empty filter still requires tradable", Filter{}, func(a *model.Asset) { a.Tradable = false }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := base
			c.mutate(&a)
			if got := c.filter.Matches(a); got != c.want {
				t.Errorf("Matches(%+v) = %v, want %v", a, got, c.want)
			}
		})
	}
}

func TestSelectSortsDedupesAndCaps(t *testing.T) {
	assets := []model.Asset{
		{Symbol: "MSFT", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
		{Symbol: "AAPL", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
		{Symbol: "XYZ", Class: "us_equity", Status: "active", Tradable: true, Shortable: false},
		{Symbol: "AAPL", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
		{Symbol: "GOOG", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
	}

	got := Symbols(Select(assets, defaultFilter(), 0))
	want := []string{"AAPL", "GOOG", "MSFT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}

	got = Symbols(Select(assets, defaultFilter(), 2))
	want = []string{"AAPL", "GOOG"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select with cap = %v, want %v", got, want)
	}
}

func TestSelectShortableScreen(t *testing.T) {
	assets := []model.Asset{
		{Symbol: "AAPL", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
		{Symbol: "XYZ", Class: "us_equity", Status: "active", Tradable: true, Shortable: false},
	}
	got := Symbols(Select(assets, defaultFilter(), 0))
	if !reflect.DeepEqual(got, []string{"AAPL"}) {
		t.Errorf("Select = %v, want [AAPL]", got)
	}
}

func TestSelectEmptyCatalog(t *testing.T) {
	if got := Select(nil, defaultFilter(), 0); len(got) != 0 {
		t.Errorf("Select(nil) = %v, want empty", got)
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	assets := []model.Asset{
		{Symbol: "B", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
		{Symbol: "A", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
		{Symbol: "C", Class: "us_equity", Status: "active", Tradable: true, Shortable: true},
	}
	first := Symbols(Select(assets, defaultFilter(), 0))
	for i := 0; i < 10; i++ {
		if got := Symbols(Select(assets, defaultFilter(), 0)); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: %v, want %v", i, got, first)
		}
	}
}
