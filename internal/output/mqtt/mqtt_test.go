package mqtt

import (
	"encoding/json"
	"testing"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	mqttIface "github.com/tetragramaton/loadcell-daq/internal/interface/mqtt"
)

// fakeClient records published messages; the raw paho surface is unused.
type fakeClient struct {
	msgs []mqttIface.Message
}

func (f *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token {
	return nil
}

func (f *fakeClient) Subscribe(topic string, qos byte, callback pahomqtt.MessageHandler) pahomqtt.Token {
	return nil
}

func (f *fakeClient) Disconnect(quiesce uint)  {}
func (f *fakeClient) IsConnectionOpen() bool   { return true }
func (f *fakeClient) Close(quiesce uint) error { return nil }

func (f *fakeClient) PublishEvent(m mqttIface.Message) error {
	f.msgs = append(f.msgs, m)
	return nil
}

func (f *fakeClient) SubscribeToTopic(sub mqttIface.Subscription) error { return nil }

func TestPublishSamples(t *testing.T) {
	fc := &fakeClient{}
	o, err := New(fc, "loadcell/bench/state", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	samples := []acquire.Sample{{Elapsed: 1.5, Value: 2.25}}
	if err := o.Publish(samples); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(fc.msgs) != 1 {
		t.Fatalf("published %d messages; want 1", len(fc.msgs))
	}
	m := fc.msgs[0]
	if m.Topic != "loadcell/bench/state" || m.QoS != 1 || m.Retain {
		t.Fatalf("unexpected message envelope: %+v", m)
	}

	var got acquire.Sample
	if err := json.Unmarshal(m.Payload, &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.Elapsed != 1.5 || got.Value != 2.25 {
		t.Fatalf("payload sample = %+v", got)
	}
}

func TestDiscoveryAnnouncedOnce(t *testing.T) {
	fc := &fakeClient{}
	if _, err := New(fc, "loadcell/bench/state", "bench.cell"); err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(fc.msgs) != 1 {
		t.Fatalf("discovery messages = %d; want 1", len(fc.msgs))
	}
	m := fc.msgs[0]
	if !m.Retain {
		t.Fatalf("discovery payload must be retained")
	}
	if m.Topic != "homeassistant/sensor/bench_cell/weight/config" {
		t.Fatalf("discovery topic = %q", m.Topic)
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal(m.Payload, &cfg); err != nil {
		t.Fatalf("discovery payload: %v", err)
	}
	if cfg["state_topic"] != "loadcell/bench/state" || cfg["unit_of_measurement"] != "kg" {
		t.Fatalf("discovery payload wrong: %v", cfg)
	}
}
