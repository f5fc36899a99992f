package transport

import "time"

// Config carries the serial line parameters for the transducer link.
type Config struct {
	Address  string        `json:"address"`
	BaudRate int           `json:"baud_rate"`
	DataBits int           `json:"data_bits"`
	Parity   string        `json:"parity"` // "N", "E" or "O"
	StopBits int           `json:"stop_bits"`
	Timeout  time.Duration `json:"-"`
}

// Client is a duplex byte channel to the transducer. Read honours the
// configured timeout; neither call is safe for concurrent use, the
// sampling loop is the only goroutine driving the channel.
type Client interface {
	API
	Open() error
	Close() error
}

type API interface {
	Write(p []byte) (n int, err error)
	Read(p []byte) (n int, err error)
}
