package provider

import (
	alpacaimpl "stockbars/internal/provider/alpaca"
)

// AlpacaProvider is a DataProvider implementation backed by the Alpaca API.
// It embeds *alpaca.Client to expose the vendor calls with minimal boilerplate.
type AlpacaProvider struct {
	*alpacaimpl.Client
}

// NewAlpacaProvider creates a new Alpaca-backed DataProvider.
func NewAlpacaProvider(opts alpacaimpl.Options) (*AlpacaProvider, error) {
	client, err := alpacaimpl.New(opts)
	if err != nil {
		return nil, err
	}
	return &AlpacaProvider{Client: client}, nil
}

// GetName returns provider name
func (p *AlpacaProvider) GetName() string {
	return "Alpaca"
}

// SetLogFunc sets fan-in logger. When set, the client sends logs here instead of slog.
func (p *AlpacaProvider) SetLogFunc(fn alpacaimpl.LogFunc) {
	if p.Client != nil {
		p.Client.LogFunc = fn
	}
}
