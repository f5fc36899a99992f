package mqtt

import (
	"crypto/tls"
	"errors"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	mqttIface "github.com/tetragramaton/loadcell-daq/internal/interface/mqtt"
)

type mqttClient struct {
	mqttIface.API
}

type Config struct {
	BrokerURL string
	ClientID  string
	Username  string
	Password  string
	TLS       bool
}

func NewClient(cfg Config) (mqttIface.Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("mqtt: missing broker URL")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("mqtt: missing client id")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetPingTimeout(3 * time.Second).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.TLS {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	client := mqtt.NewClient(opts)
	t := client.Connect()
	if ok := t.WaitTimeout(10 * time.Second); !ok || t.Error() != nil {
		if t.Error() != nil {
			return nil, t.Error()
		}
		return nil, errors.New("mqtt: connect timed out")
	}
	return &mqttClient{API: client}, nil
}

func (c mqttClient) PublishEvent(message mqttIface.Message) error {
	t := c.API.Publish(message.Topic, message.QoS, message.Retain, message.Payload)
	t.Wait()
	return t.Error()
}

func (c mqttClient) SubscribeToTopic(sub mqttIface.Subscription) error {
	t := c.API.Subscribe(sub.Topic, sub.QoS, sub.Callback)
	t.Wait()
	return t.Error()
}

func (c mqttClient) Close(quiesce uint) error {
	if c.IsConnectionOpen() {
		c.Disconnect(quiesce)
	}
	return nil
}
