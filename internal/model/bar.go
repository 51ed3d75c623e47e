package model

import "time"

// Bar is one OHLCV observation for a symbol over one timeframe interval.
// JSON keys follow the vendor's short names so json exports stay comparable
// with raw API payloads.
type Bar struct {
	Timestamp  time.Time `json:"t"`
	Open       float64   `json:"o"`
	High       float64   `json:"h"`
	Low        float64   `json:"l"`
	Close      float64   `json:"c"`
	Volume     uint64    `json:"v"`
	TradeCount uint64    `json:"n,omitempty"`
	VWAP       float64   `json:"vw,omitempty"`
}
