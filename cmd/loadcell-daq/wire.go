//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/tetragramaton/loadcell-daq/internal/config"
	"github.com/tetragramaton/loadcell-daq/internal/logging"
)

func InitMainHandler(cfg config.Config, logsvc *logging.Service) (*MainHandler, error) {
	wire.Build(
		NewMainHandler,
		ProvideTransport,
		ProvideReader,
		ProvideSampler,
		ProvideOutputs,
	)
	return nil, nil // wire will generate the result
}
