// Package mqtt streams samples to a broker so a remote viewer (or Home
// Assistant) can follow the session live.
package mqtt

import (
	"encoding/json"
	"fmt"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	"github.com/tetragramaton/loadcell-daq/internal/client/ha"
	mqttIface "github.com/tetragramaton/loadcell-daq/internal/interface/mqtt"
	"github.com/tetragramaton/loadcell-daq/internal/interface/output"
)

type Output struct {
	client mqttIface.Client
	topic  string
}

// New wires an MQTT output on the given state topic. When deviceID is
// non-empty a retained Home Assistant discovery payload is announced
// before the first sample.
func New(client mqttIface.Client, topic, deviceID string) (output.Output, error) {
	o := &Output{client: client, topic: topic}
	if deviceID != "" {
		cfg := ha.WeightSensorConfig(deviceID, topic)
		payload, err := cfg.Marshal()
		if err != nil {
			return nil, fmt.Errorf("marshal discovery config: %w", err)
		}
		err = client.PublishEvent(mqttIface.Message{
			Topic:   ha.TopicSensorConfig(ha.Sanitize(deviceID)),
			Payload: payload,
			QoS:     1,
			Retain:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("publish discovery config: %w", err)
		}
	}
	return o, nil
}

func (o *Output) Publish(samples []acquire.Sample) error {
	for _, s := range samples {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal sample: %w", err)
		}
		err = o.client.PublishEvent(mqttIface.Message{
			Topic:   o.topic,
			Payload: payload,
			QoS:     1,
		})
		if err != nil {
			return fmt.Errorf("publish sample: %w", err)
		}
	}
	return nil
}

func (o *Output) Close() error {
	return o.client.Close(250)
}
