package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type watchCfg struct {
	Server   string
	ClientID string
	Username string
	Password string
	Topic    string
}

func main() {
	_ = godotenv.Load()

	server := flag.String("mqtt-server", "tcp://localhost:1883", "MQTT broker (tcp://host:port)")
	clientID := flag.String("mqtt-client-id", "loadcell-watch-"+time.Now().Format("150405"), "MQTT client id")
	user := flag.String("mqtt-user", "", "MQTT username")
	topic := flag.String("topic", "loadcell/+/state", "State topic to watch")
	flag.Parse()

	cfg := watchCfg{
		Server:   *server,
		ClientID: *clientID,
		Username: *user,
		Password: os.Getenv("MQTT_PASSWORD"),
		Topic:    *topic,
	}

	handler, err := InitWatchHandler(cfg)
	if err != nil {
		log.Fatal(err)
	}
	handler.Handle()
}
