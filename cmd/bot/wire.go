//go:build wireinject
// +build wireinject

package main

import (
	"github.com/NefyAD/madoguchi/cmd/bot/config"
	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/NefyAD/madoguchi/pkg/panel"
	"github.com/NefyAD/madoguchi/pkg/settings"
	"github.com/google/wire"
	"github.com/gorilla/mux"
)

func InitializeApp() (*App, error) {
	wire.Build(
		wire.Value(logging.Name(config.AppName)),
		logging.NewConfig,
		logging.CommonLogger,
		mux.NewRouter,
		settings.NewStore,
		panel.NewBuilder,
		NewApp,
	)
	return new(App), nil
}
