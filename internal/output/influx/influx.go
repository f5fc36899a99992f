// Package influx writes samples into an InfluxDB bucket, one point per
// record, tagged with the device id. Sample wall-clock times become point
// timestamps so sessions line up with other series in the bucket.
package influx

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	"github.com/tetragramaton/loadcell-daq/internal/interface/output"
)

const measurement = "load"

type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
	Device string
}

type Output struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	device   string
}

func New(cfg Config) (output.Output, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	health, err := client.Health(context.Background())
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("influx health check: %w", err)
	}
	if health.Status != "pass" {
		client.Close()
		return nil, fmt.Errorf("influx not healthy: %s", health.Status)
	}
	return &Output{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		device:   cfg.Device,
	}, nil
}

func (o *Output) Publish(samples []acquire.Sample) error {
	for _, s := range samples {
		point := influxdb2.NewPoint(
			measurement,
			map[string]string{"device": o.device},
			map[string]interface{}{
				"value_kg":  s.Value,
				"elapsed_s": s.Elapsed,
			},
			s.At,
		)
		if err := o.writeAPI.WritePoint(context.Background(), point); err != nil {
			return fmt.Errorf("write point: %w", err)
		}
	}
	return nil
}

func (o *Output) Close() error {
	o.client.Close()
	return nil
}
