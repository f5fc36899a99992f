package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mq "github.com/eclipse/paho.mqtt.golang"
	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	mqttclient "github.com/tetragramaton/loadcell-daq/internal/client/mqtt"
	mqttIface "github.com/tetragramaton/loadcell-daq/internal/interface/mqtt"
)

type WatchHandler struct {
	Cfg        watchCfg
	MQQTClient mqttIface.Client
}

func NewWatchHandler(cfg watchCfg, mqttClient mqttIface.Client) *WatchHandler {
	return &WatchHandler{
		Cfg:        cfg,
		MQQTClient: mqttClient,
	}
}

func ProvideMqttClient(cfg watchCfg) (mqttIface.Client, error) {
	return mqttclient.NewClient(mqttclient.Config{
		BrokerURL: cfg.Server,
		ClientID:  cfg.ClientID,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
}

// Handle subscribes to the state topic and prints every sample it sees
// until interrupted.
func (h *WatchHandler) Handle() {
	subscription := mqttIface.Subscription{
		Topic: h.Cfg.Topic,
		QoS:   1,
		Callback: func(_ mq.Client, m mq.Message) {
			var s acquire.Sample
			if err := json.Unmarshal(m.Payload(), &s); err != nil {
				log.Printf("bad sample on %s: %v", m.Topic(), err)
				return
			}
			fmt.Printf("%s  %8.2f s  %8.2f kg\n", m.Topic(), s.Elapsed, s.Value)
		},
	}
	if err := h.MQQTClient.SubscribeToTopic(subscription); err != nil {
		log.Fatalf("subscribe: %v", err)
	}
	log.Printf("watching %s ...", h.Cfg.Topic)

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, syscall.SIGINT, syscall.SIGTERM)
	<-terminate

	if err := h.MQQTClient.Close(250); err != nil {
		log.Printf("mqtt close: %v", err)
	}
}
