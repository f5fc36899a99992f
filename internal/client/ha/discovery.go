// Package ha builds Home Assistant MQTT discovery payloads so a live
// acquisition session shows up as a weight sensor without manual setup.
package ha

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type Device struct {
	Identifiers  []string `json:"identifiers,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Model        string   `json:"model,omitempty"`
	Name         string   `json:"name,omitempty"`
}

type SensorConfig struct {
	Name        string  `json:"name"`
	UniqueID    string  `json:"unique_id"`
	StateTopic  string  `json:"state_topic"`
	ValueTpl    string  `json:"value_template,omitempty"`
	DeviceClass string  `json:"device_class,omitempty"`
	StateClass  string  `json:"state_class,omitempty"`
	UnitOfMeas  string  `json:"unit_of_measurement,omitempty"`
	Device      *Device `json:"device,omitempty"`
}

func (c *SensorConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// WeightSensorConfig describes the load-cell value stream published on
// stateTopic for the given device id.
func WeightSensorConfig(deviceID, stateTopic string) *SensorConfig {
	return &SensorConfig{
		Name:        fmt.Sprintf("%s weight", deviceID),
		UniqueID:    Sanitize(deviceID) + "_weight",
		StateTopic:  stateTopic,
		ValueTpl:    "{{ value_json.value_kg }}",
		DeviceClass: "weight",
		StateClass:  "measurement",
		UnitOfMeas:  "kg",
		Device: &Device{
			Identifiers: []string{deviceID},
			Name:        deviceID,
		},
	}
}

func TopicSensorConfig(unique string) string {
	return fmt.Sprintf("homeassistant/sensor/%s/weight/config", unique)
}

var nonTopicChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// Sanitize lowercases an id and squashes anything a discovery topic
// cannot carry.
func Sanitize(s string) string {
	return strings.ToLower(nonTopicChars.ReplaceAllString(s, "_"))
}
