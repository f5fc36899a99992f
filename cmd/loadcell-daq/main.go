package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/tetragramaton/loadcell-daq/internal/config"
	"github.com/tetragramaton/loadcell-daq/internal/logging"
)

func main() {
	// .env is optional; secrets may also come from the real environment.
	_ = godotenv.Load()

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatal(err)
	}

	logsvc, err := logging.Open(cfg.Dev, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logsvc.Close()

	handler, err := InitMainHandler(cfg, logsvc)
	if err != nil {
		log.Fatal(err)
	}
	if err := handler.Handle(); err != nil {
		log.Fatal(err)
	}
}
