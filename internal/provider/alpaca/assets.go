package alpaca

import (
	"fmt"

	alpacaapi "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"

	"stockbars/internal/model"
)

// VerifyAccount checks the credentials by fetching the trading account.
// Callers treat an error here as fatal: nothing else can work without auth.
func (c *Client) VerifyAccount() (model.AccountInfo, error) {
	acct, err := c.trading.GetAccount()
	if err != nil {
		return model.AccountInfo{}, fmt.Errorf("get account: %w", err)
	}
	return model.AccountInfo{
		Status:   string(acct.Status),
		Currency: string(acct.Currency),
		Cash:     acct.Cash,
		Equity:   acct.Equity,
		Blocked:  acct.AccountBlocked || acct.TradingBlocked,
	}, nil
}

// ListAssets fetches the full asset catalog filtered server-side by status
// and class. The local screen (tradable, shortable, ...) happens later.
func (c *Client) ListAssets(status, class string) ([]model.Asset, error) {
	raw, err := c.trading.GetAssets(alpacaapi.GetAssetsRequest{
		Status:     status,
		AssetClass: class,
	})
	if err != nil {
		return nil, fmt.Errorf("get assets: %w", err)
	}

	assets := make([]model.Asset, len(raw))
	for i, a := range raw {
		assets[i] = model.Asset{
			Symbol:       a.Symbol,
			Name:         a.Name,
			Exchange:     a.Exchange,
			Class:        string(a.Class),
			Status:       string(a.Status),
			Tradable:     a.Tradable,
			Marginable:   a.Marginable,
			Shortable:    a.Shortable,
			EasyToBorrow: a.EasyToBorrow,
			Fractionable: a.Fractionable,
		}
	}
	c.logf("fetched %d assets (status=%s class=%s)", len(assets), status, class)
	return assets, nil
}
