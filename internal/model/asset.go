package model

import "github.com/shopspring/decimal"

// Asset is one instrument from the broker's asset catalog.
type Asset struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Exchange     string `json:"exchange"`
	Class        string `json:"class"`
	Status       string `json:"status"`
	Tradable     bool   `json:"tradable"`
	Marginable   bool   `json:"marginable"`
	Shortable    bool   `json:"shortable"`
	EasyToBorrow bool   `json:"easy_to_borrow"`
	Fractionable bool   `json:"fractionable"`
}

// AccountInfo is the subset of the trading account used by the startup
// preflight check.
type AccountInfo struct {
	Status   string          `json:"status"`
	Currency string          `json:"currency"`
	Cash     decimal.Decimal `json:"cash"`
	Equity   decimal.Decimal `json:"equity"`
	Blocked  bool            `json:"blocked"`
}
