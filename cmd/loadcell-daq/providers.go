package main

import (
	"fmt"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	mqttclient "github.com/tetragramaton/loadcell-daq/internal/client/mqtt"
	"github.com/tetragramaton/loadcell-daq/internal/client/serial"
	"github.com/tetragramaton/loadcell-daq/internal/client/sim"
	"github.com/tetragramaton/loadcell-daq/internal/config"
	"github.com/tetragramaton/loadcell-daq/internal/interface/output"
	"github.com/tetragramaton/loadcell-daq/internal/interface/transport"
	"github.com/tetragramaton/loadcell-daq/internal/logging"
	consoleout "github.com/tetragramaton/loadcell-daq/internal/output/console"
	influxout "github.com/tetragramaton/loadcell-daq/internal/output/influx"
	mqttout "github.com/tetragramaton/loadcell-daq/internal/output/mqtt"
)

type MainHandler struct {
	Cfg       config.Config
	Log       *logging.Service
	Transport transport.Client
	Sampler   *acquire.Sampler
	Outputs   []output.Output
}

func NewMainHandler(
	cfg config.Config,
	logsvc *logging.Service,
	t transport.Client,
	sampler *acquire.Sampler,
	outputs []output.Output,
) *MainHandler {
	return &MainHandler{
		Cfg:       cfg,
		Log:       logsvc,
		Transport: t,
		Sampler:   sampler,
		Outputs:   outputs,
	}
}

func ProvideTransport(cfg config.Config) (transport.Client, error) {
	switch cfg.Device {
	case "sim":
		// A bench-like profile: tare weight, then a load applied and released.
		return sim.FromKilograms(
			100.00, 100.00, 100.05,
			105.50, 110.25, 112.00, 112.00, 111.90,
			100.10, 100.00,
		), nil
	case "serial":
		return serial.NewClient(cfg.Transport()), nil
	}
	return nil, fmt.Errorf("unknown device %q", cfg.Device)
}

func ProvideReader(cfg config.Config, t transport.Client, logsvc *logging.Service) *acquire.Reader {
	return acquire.NewReader(t, cfg.Reader(), logsvc)
}

func ProvideSampler(cfg config.Config, reader *acquire.Reader, logsvc *logging.Service) *acquire.Sampler {
	return acquire.NewSampler(reader, acquire.NewCalibrator(), acquire.NewStore(), cfg.Sampler(), logsvc)
}

func ProvideOutputs(cfg config.Config, logsvc *logging.Service) ([]output.Output, error) {
	var outs []output.Output
	for _, oc := range cfg.Outputs {
		switch oc.Type {
		case "console":
			outs = append(outs, consoleout.New())
		case "mqtt":
			if oc.MQTT == nil {
				return nil, fmt.Errorf("mqtt output requires an mqtt section")
			}
			client, err := mqttclient.NewClient(mqttclient.Config{
				BrokerURL: oc.MQTT.Server,
				ClientID:  oc.MQTT.ClientID,
				Username:  oc.MQTT.Username,
				Password:  oc.MQTT.Password,
				TLS:       oc.MQTT.TLS,
			})
			if err != nil {
				return nil, fmt.Errorf("mqtt connect: %w", err)
			}
			discoveryID := ""
			if oc.MQTT.Discovery {
				discoveryID = cfg.DeviceID
			}
			out, err := mqttout.New(client, oc.MQTT.Topic, discoveryID)
			if err != nil {
				return nil, err
			}
			outs = append(outs, out)
		case "influx":
			if oc.Influx == nil {
				return nil, fmt.Errorf("influx output requires an influx section")
			}
			out, err := influxout.New(influxout.Config{
				URL:    oc.Influx.URL,
				Token:  oc.Influx.Token,
				Org:    oc.Influx.Org,
				Bucket: oc.Influx.Bucket,
				Device: cfg.DeviceID,
			})
			if err != nil {
				return nil, fmt.Errorf("influx connect: %w", err)
			}
			outs = append(outs, out)
		default:
			logsvc.Error("ignoring unknown output type %q", oc.Type)
		}
	}
	return outs, nil
}
