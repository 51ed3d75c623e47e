//go:build wireinject
// +build wireinject

package main

import (
	"stockbars/internal/app"
	"stockbars/internal/provider"

	"github.com/google/wire"
)

// InitializeApp builds App (config, logger, saver, provider) via Wire.
// App.Run closes the provider when it returns.
func InitializeApp(configPath string) (*app.App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideLocation,
		app.ProvideBarSaver,
		app.ProvideAlpacaProvider,
		wire.Bind(new(provider.DataProvider), new(*provider.AlpacaProvider)),
		wire.Struct(new(app.App), "*"),
	)
	return nil, nil
}
