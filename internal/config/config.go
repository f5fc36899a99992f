package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	"github.com/tetragramaton/loadcell-daq/internal/interface/transport"
)

type SerialConfig struct {
	Port      string `json:"port"`
	Baud      int    `json:"baud"`
	DataBits  int    `json:"data_bits"`
	Parity    string `json:"parity"`
	StopBits  int    `json:"stop_bits"`
	TimeoutMs int    `json:"timeout_ms"`
}

type AcquireConfig struct {
	Retries    int `json:"retries"`
	SettleMs   int `json:"settle_ms"`
	BackoffMs  int `json:"backoff_ms"`
	IntervalMs int `json:"interval_ms"`
	JoinWaitMs int `json:"join_wait_ms"`
}

type MQTTConfig struct {
	Server    string `json:"server"`
	ClientID  string `json:"client_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Topic     string `json:"topic"`
	TLS       bool   `json:"tls"`
	Discovery bool   `json:"discovery"`
}

type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

type OutputConfig struct {
	Type   string        `json:"type"` // console, mqtt or influx
	MQTT   *MQTTConfig   `json:"mqtt,omitempty"`
	Influx *InfluxConfig `json:"influx,omitempty"`
}

type Config struct {
	DeviceID string         `json:"device_id"`
	Device   string         `json:"device"` // "serial" or "sim"
	Serial   SerialConfig   `json:"serial"`
	Acquire  AcquireConfig  `json:"acquire"`
	Outputs  []OutputConfig `json:"outputs"`
	CSVPath  string         `json:"csv_path"`
	LogFile  string         `json:"log_file"`
	Dev      bool           `json:"dev"`
}

// Default mirrors the bench setup: 9600 8N1 with a one second read
// timeout, three attempts per sample, one sample per second.
func Default() Config {
	return Config{
		DeviceID: "bench.cell",
		Device:   "serial",
		Serial: SerialConfig{
			Port:      "/dev/ttyUSB0",
			Baud:      9600,
			DataBits:  8,
			Parity:    "N",
			StopBits:  1,
			TimeoutMs: 1000,
		},
		Acquire: AcquireConfig{
			Retries:    3,
			SettleMs:   100,
			BackoffMs:  1000,
			IntervalMs: 1000,
			JoinWaitMs: 5000,
		},
		Outputs: []OutputConfig{{Type: "console"}},
		CSVPath: "session.csv",
		LogFile: "error.log",
	}
}

// LoadFromFlags loads configuration from an optional JSON file and flag
// overrides. Flags win over file values; broker and database secrets may
// also arrive via MQTT_PASSWORD and INFLUX_TOKEN.
func LoadFromFlags() (Config, error) {
	cfgPath := flag.String("config", "", "Path to JSON config file")
	flagDevice := flag.String("device", "", "Transducer device: serial|sim")
	flagDeviceID := flag.String("device-id", "", "Device id used in topics and export tags")
	flagPort := flag.String("port", "", "Serial port (e.g. /dev/ttyUSB0)")
	flagBaud := flag.Int("baud", -1, "Serial baud rate")
	flagTimeout := flag.Int("timeout-ms", -1, "Serial read timeout in ms")
	flagRetries := flag.Int("retries", -1, "Read attempts per sample")
	flagInterval := flag.Int("interval-ms", -1, "Polling interval in ms")
	flagOutputs := flag.String("outputs", "", "Comma-separated outputs (console,mqtt,influx)")
	flagMQTTServer := flag.String("mqtt-server", "", "MQTT broker (tcp://host:port)")
	flagMQTTUser := flag.String("mqtt-user", "", "MQTT username")
	flagMQTTClientID := flag.String("mqtt-client-id", "", "MQTT client id")
	flagMQTTTopic := flag.String("mqtt-topic", "", "MQTT state topic")
	flagInfluxURL := flag.String("influx-url", "", "InfluxDB URL")
	flagInfluxOrg := flag.String("influx-org", "", "InfluxDB organisation")
	flagInfluxBucket := flag.String("influx-bucket", "", "InfluxDB bucket")
	flagCSV := flag.String("csv", "", "CSV export path written on stop")
	flagLog := flag.String("log", "", "Log file path")
	flagDev := flag.Bool("dev", false, "Keep debug entries in the log")

	flag.Parse()

	cfg := Default()

	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if *flagDevice != "" {
		cfg.Device = strings.ToLower(*flagDevice)
	}
	if *flagDeviceID != "" {
		cfg.DeviceID = *flagDeviceID
	}
	if *flagPort != "" {
		cfg.Serial.Port = *flagPort
	}
	if *flagBaud != -1 {
		cfg.Serial.Baud = *flagBaud
	}
	if *flagTimeout != -1 {
		cfg.Serial.TimeoutMs = *flagTimeout
	}
	if *flagRetries != -1 {
		cfg.Acquire.Retries = *flagRetries
	}
	if *flagInterval != -1 {
		cfg.Acquire.IntervalMs = *flagInterval
	}
	if *flagOutputs != "" {
		outs := make([]OutputConfig, 0, 3)
		for _, p := range strings.Split(*flagOutputs, ",") {
			if t := strings.TrimSpace(p); t != "" {
				outs = append(outs, OutputConfig{Type: t})
			}
		}
		cfg.Outputs = outs
	}
	for i := range cfg.Outputs {
		switch cfg.Outputs[i].Type {
		case "mqtt":
			if cfg.Outputs[i].MQTT == nil {
				cfg.Outputs[i].MQTT = &MQTTConfig{}
			}
			m := cfg.Outputs[i].MQTT
			if *flagMQTTServer != "" {
				m.Server = *flagMQTTServer
			}
			if *flagMQTTUser != "" {
				m.Username = *flagMQTTUser
			}
			if *flagMQTTClientID != "" {
				m.ClientID = *flagMQTTClientID
			}
			if *flagMQTTTopic != "" {
				m.Topic = *flagMQTTTopic
			}
		case "influx":
			if cfg.Outputs[i].Influx == nil {
				cfg.Outputs[i].Influx = &InfluxConfig{}
			}
			in := cfg.Outputs[i].Influx
			if *flagInfluxURL != "" {
				in.URL = *flagInfluxURL
			}
			if *flagInfluxOrg != "" {
				in.Org = *flagInfluxOrg
			}
			if *flagInfluxBucket != "" {
				in.Bucket = *flagInfluxBucket
			}
		}
	}
	if *flagCSV != "" {
		cfg.CSVPath = *flagCSV
	}
	if *flagLog != "" {
		cfg.LogFile = *flagLog
	}
	if *flagDev {
		cfg.Dev = true
	}

	cfg.applyEnvSecrets()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnvSecrets() {
	for i := range c.Outputs {
		if m := c.Outputs[i].MQTT; m != nil && m.Password == "" {
			m.Password = os.Getenv("MQTT_PASSWORD")
		}
		if in := c.Outputs[i].Influx; in != nil && in.Token == "" {
			in.Token = os.Getenv("INFLUX_TOKEN")
		}
	}
}

func (c Config) Validate() error {
	if c.Device != "serial" && c.Device != "sim" {
		return fmt.Errorf("device must be 'serial' or 'sim', got %q", c.Device)
	}
	if c.Serial.Baud <= 0 {
		return errors.New("baud must be > 0")
	}
	if c.Acquire.Retries < 1 {
		return errors.New("retries must be >= 1")
	}
	if c.Acquire.IntervalMs <= 0 {
		return errors.New("interval-ms must be > 0")
	}
	return nil
}

// Transport maps the serial section onto the transport configuration.
func (c Config) Transport() transport.Config {
	return transport.Config{
		Address:  c.Serial.Port,
		BaudRate: c.Serial.Baud,
		DataBits: c.Serial.DataBits,
		Parity:   c.Serial.Parity,
		StopBits: c.Serial.StopBits,
		Timeout:  time.Duration(c.Serial.TimeoutMs) * time.Millisecond,
	}
}

func (c Config) Reader() acquire.ReaderConfig {
	return acquire.ReaderConfig{
		Retries: c.Acquire.Retries,
		Settle:  time.Duration(c.Acquire.SettleMs) * time.Millisecond,
		Backoff: time.Duration(c.Acquire.BackoffMs) * time.Millisecond,
	}
}

func (c Config) Sampler() acquire.SamplerConfig {
	return acquire.SamplerConfig{
		Interval: time.Duration(c.Acquire.IntervalMs) * time.Millisecond,
		JoinWait: time.Duration(c.Acquire.JoinWaitMs) * time.Millisecond,
	}
}
