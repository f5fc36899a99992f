package config

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Serial.Baud != 9600 || cfg.Serial.Parity != "N" {
		t.Errorf("unexpected serial defaults: %+v", cfg.Serial)
	}
	if cfg.Acquire.Retries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.Acquire.Retries)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad device", func(c *Config) { c.Device = "tcp" }},
		{"zero baud", func(c *Config) { c.Serial.Baud = 0 }},
		{"zero retries", func(c *Config) { c.Acquire.Retries = 0 }},
		{"zero interval", func(c *Config) { c.Acquire.IntervalMs = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestJSONOverridesDefaults(t *testing.T) {
	cfg := Default()
	raw := `{"device":"sim","serial":{"port":"/dev/ttyACM1","baud":19200,"data_bits":8,"parity":"N","stop_bits":1,"timeout_ms":500},"outputs":[{"type":"mqtt","mqtt":{"server":"tcp://broker:1883","topic":"bench/weight"}}]}`
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Device != "sim" {
		t.Errorf("expected sim device, got %q", cfg.Device)
	}
	if cfg.Serial.Port != "/dev/ttyACM1" || cfg.Serial.Baud != 19200 {
		t.Errorf("serial section not overridden: %+v", cfg.Serial)
	}
	if len(cfg.Outputs) != 1 || cfg.Outputs[0].Type != "mqtt" || cfg.Outputs[0].MQTT.Server != "tcp://broker:1883" {
		t.Errorf("outputs section not overridden: %+v", cfg.Outputs)
	}
	// Untouched sections keep their defaults.
	if cfg.Acquire.IntervalMs != 1000 {
		t.Errorf("expected default interval, got %d", cfg.Acquire.IntervalMs)
	}
}

func TestEnvSecrets(t *testing.T) {
	t.Setenv("MQTT_PASSWORD", "hunter2")
	t.Setenv("INFLUX_TOKEN", "tok-123")

	cfg := Default()
	cfg.Outputs = []OutputConfig{
		{Type: "mqtt", MQTT: &MQTTConfig{Server: "tcp://broker:1883"}},
		{Type: "influx", Influx: &InfluxConfig{URL: "http://db:8086"}},
	}
	cfg.applyEnvSecrets()

	if cfg.Outputs[0].MQTT.Password != "hunter2" {
		t.Errorf("mqtt password not taken from env: %q", cfg.Outputs[0].MQTT.Password)
	}
	if cfg.Outputs[1].Influx.Token != "tok-123" {
		t.Errorf("influx token not taken from env: %q", cfg.Outputs[1].Influx.Token)
	}
}

func TestEnvSecretsDoNotOverrideFile(t *testing.T) {
	t.Setenv("MQTT_PASSWORD", "hunter2")

	cfg := Default()
	cfg.Outputs = []OutputConfig{{Type: "mqtt", MQTT: &MQTTConfig{Password: "from-file"}}}
	cfg.applyEnvSecrets()

	if got := cfg.Outputs[0].MQTT.Password; got != "from-file" {
		t.Errorf("file password overridden: %q", got)
	}
}

func TestTransportMapping(t *testing.T) {
	cfg := Default()
	tc := cfg.Transport()
	if tc.Address != "/dev/ttyUSB0" || tc.BaudRate != 9600 || tc.Timeout != time.Second {
		t.Errorf("unexpected transport config: %+v", tc)
	}
	rc := cfg.Reader()
	if rc.Retries != 3 || rc.Settle != 100*time.Millisecond || rc.Backoff != time.Second {
		t.Errorf("unexpected reader config: %+v", rc)
	}
	sc := cfg.Sampler()
	if sc.Interval != time.Second || sc.JoinWait != 5*time.Second {
		t.Errorf("unexpected sampler config: %+v", sc)
	}
}
