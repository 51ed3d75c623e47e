package alpaca

import (
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"stockbars/internal/model"
)

// Minutes per trading day (max, extended hours)
const minPerDay = 960

// estimatedBars returns pre-alloc capacity for [from, to]. days * perDay + 10% buffer. No grow.
func estimatedBars(from, to time.Time, perDay int) int {
	if to.Before(from) {
		return 0
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	if perDay < 1 {
		perDay = 1
	}
	n := days * perDay
	// +10% buffer so we never realloc
	n = n + n/10
	if n > 500000 {
		n = 500000
	}
	return n
}

// barsPerDay estimates rows per calendar day for the configured timeframe.
func (c *Client) barsPerDay() int {
	n := c.timeframe.N
	if n < 1 {
		n = 1
	}
	switch c.timeframe.Unit {
	case marketdata.Min:
		return minPerDay/n + 1
	case marketdata.Hour:
		return 16/n + 1
	default:
		return 1
	}
}

// splitWindowIntoChunks splits [from, to] into day-aligned chunks of at most
// maxDays. Every chunk except the last ends at 23:59:59 of its final day;
// the last chunk ends exactly at to.
func splitWindowIntoChunks(from, to time.Time, maxDays int) [][2]time.Time {
	var chunks [][2]time.Time
	if maxDays < 1 {
		maxDays = 1
	}
	if to.Before(from) {
		return chunks
	}

	for cur := from; !cur.After(to); {
		last := cur.AddDate(0, 0, maxDays-1)
		curEnd := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, last.Location())
		if curEnd.After(to) {
			curEnd = to
		}
		chunks = append(chunks, [2]time.Time{cur, curEnd})
		if curEnd.Equal(to) {
			break
		}
		next := curEnd.AddDate(0, 0, 1)
		cur = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
	}
	return chunks
}

// appendMonotonic appends src bars to dst keeping timestamps strictly
// increasing, dropping any bar at or before the current tail. Chunk edges
// can overlap; this keeps the concatenation duplicate-free.
func appendMonotonic(dst, src []model.Bar) []model.Bar {
	for _, b := range src {
		if n := len(dst); n > 0 && !b.Timestamp.After(dst[n-1].Timestamp) {
			continue
		}
		dst = append(dst, b)
	}
	return dst
}

// GetBars fetches all bars for symbol in [from, to], splitting the window
// into chunkDays-sized requests. The SDK paginates and retries within each
// request; a chunk that still fails aborts the whole symbol.
func (c *Client) GetBars(symbol string, from, to time.Time) ([]model.Bar, error) {
	chunks := splitWindowIntoChunks(from, to, c.chunkDays)
	if len(chunks) == 0 {
		c.logf("[%s] no chunks in window %s to %s", symbol, from.Format("2006-01-02"), to.Format("2006-01-02"))
		return nil, nil
	}
	if len(chunks) > 1 {
		c.logf("[%s] split window into %d requests of up to %d days", symbol, len(chunks), c.chunkDays)
	}

	all := make([]model.Bar, 0, estimatedBars(from, to, c.barsPerDay()))
	for i, ch := range chunks {
		raw, err := c.data.GetBars(symbol, marketdata.GetBarsRequest{
			TimeFrame:  c.timeframe,
			Adjustment: c.adjustment,
			Start:      ch[0],
			End:        ch[1],
			Feed:       c.feed,
		})
		if err != nil {
			return nil, fmt.Errorf("bars request %d/%d [%s to %s]: %w",
				i+1, len(chunks), ch[0].Format("2006-01-02"), ch[1].Format("2006-01-02"), err)
		}
		all = appendMonotonic(all, convertBars(raw))
	}
	return all, nil
}

func convertBars(raw []marketdata.Bar) []model.Bar {
	bars := make([]model.Bar, len(raw))
	for i, b := range raw {
		bars[i] = model.Bar{
			Timestamp:  b.Timestamp,
			Open:       b.Open,
			High:       b.High,
			Low:        b.Low,
			Close:      b.Close,
			Volume:     b.Volume,
			TradeCount: b.TradeCount,
			VWAP:       b.VWAP,
		}
	}
	return bars
}
