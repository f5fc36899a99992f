//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
)

func InitWatchHandler(cfg watchCfg) (*WatchHandler, error) {
	wire.Build(
		NewWatchHandler,
		ProvideMqttClient,
	)
	return nil, nil // wire will generate the result
}
