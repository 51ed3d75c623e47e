package provider

import (
	"time"

	"stockbars/internal/model"
)

// DataProvider is the abstraction used by the application when accessing the
// market-data vendor. Implementations are responsible for their own request
// chunking, retries and resource cleanup.
type DataProvider interface {
	GetName() string
	VerifyAccount() (model.AccountInfo, error)
	ListAssets(status, class string) ([]model.Asset, error)
	GetBars(symbol string, from, to time.Time) ([]model.Bar, error)
	Close() error
}
