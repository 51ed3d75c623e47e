package alpaca

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	alpacaapi "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

// LogFunc emits a log line. When set, used instead of slog (fan-in logger).
type LogFunc func(msg string)

// Options configure the vendor clients and the shape of bars requests.
type Options struct {
	APIKey     string
	APISecret  string
	BaseURL    string // trading API base, paper by default
	DataURL    string // market-data API base, SDK default when empty
	Feed       string // iex or sip
	TimeFrame  string // e.g. 1Min, 15Min, 1Hour, 1Day
	Adjustment string // raw, split, dividend, all
	ChunkDays  int    // days per bars request
	MaxRetries int
	RetryDelay time.Duration
}

// Client talks to the Alpaca REST APIs through the official SDK: the trading
// client for account and assets, the market-data client for bars. Retries and
// pagination are the SDK's job; chunking the request window is ours.
type Client struct {
	trading    *alpacaapi.Client
	data       *marketdata.Client
	timeframe  marketdata.TimeFrame
	adjustment marketdata.Adjustment
	feed       marketdata.Feed
	chunkDays  int
	LogFunc    LogFunc
}

// New creates a Client. The timeframe string is validated here so a bad
// value fails before any network call.
func New(opts Options) (*Client, error) {
	tf, err := ParseTimeFrame(opts.TimeFrame)
	if err != nil {
		return nil, err
	}
	chunkDays := opts.ChunkDays
	if chunkDays < 1 {
		chunkDays = 30
	}
	return &Client{
		trading: alpacaapi.NewClient(alpacaapi.ClientOpts{
			APIKey:     opts.APIKey,
			APISecret:  opts.APISecret,
			BaseURL:    opts.BaseURL,
			RetryLimit: opts.MaxRetries,
			RetryDelay: opts.RetryDelay,
		}),
		data: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:     opts.APIKey,
			APISecret:  opts.APISecret,
			BaseURL:    opts.DataURL,
			RetryLimit: opts.MaxRetries,
			RetryDelay: opts.RetryDelay,
		}),
		timeframe:  tf,
		adjustment: marketdata.Adjustment(strings.ToLower(strings.TrimSpace(opts.Adjustment))),
		feed:       marketdata.Feed(strings.ToLower(strings.TrimSpace(opts.Feed))),
		chunkDays:  chunkDays,
	}, nil
}

func (c *Client) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.LogFunc != nil {
		c.LogFunc(msg)
	} else {
		slog.Info(msg)
	}
}

// Close closes connections.
func (c *Client) Close() error {
	return nil
}
