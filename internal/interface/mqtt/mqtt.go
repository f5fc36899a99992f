package mqtt

import mqtt "github.com/eclipse/paho.mqtt.golang"

// Message is one outbound sample or discovery payload.
type Message struct {
	Topic   string
	Payload []byte
	QoS     byte
	Retain  bool
}

// Subscription attaches a handler to a topic; the watch command uses it
// to follow a live session from another process.
type Subscription struct {
	Topic    string
	QoS      byte
	Callback mqtt.MessageHandler
}

type Client interface {
	API
	PublishEvent(message Message) error
	SubscribeToTopic(subscription Subscription) error
	Close(quiesce uint) error
}

type API interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Disconnect(quiesce uint)
	IsConnectionOpen() bool
}
