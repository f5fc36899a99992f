// Package serial backs the transport interface with a physical serial
// device via goburrow/serial.
package serial

import (
	"errors"
	"fmt"

	gserial "github.com/goburrow/serial"

	"github.com/tetragramaton/loadcell-daq/internal/interface/transport"
)

var errNotOpen = errors.New("serial: port not open")

type client struct {
	cfg  transport.Config
	port gserial.Port
}

func NewClient(cfg transport.Config) transport.Client {
	return &client{cfg: cfg}
}

func (c *client) Open() error {
	if c.port != nil {
		return fmt.Errorf("serial: %s already open", c.cfg.Address)
	}
	port, err := gserial.Open(&gserial.Config{
		Address:  c.cfg.Address,
		BaudRate: c.cfg.BaudRate,
		DataBits: c.cfg.DataBits,
		Parity:   c.cfg.Parity,
		StopBits: c.cfg.StopBits,
		Timeout:  c.cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("serial: open %s: %w", c.cfg.Address, err)
	}
	c.port = port
	return nil
}

func (c *client) Close() error {
	if c.port == nil {
		return nil
	}
	err := c.port.Close()
	c.port = nil
	return err
}

func (c *client) Write(p []byte) (int, error) {
	if c.port == nil {
		return 0, errNotOpen
	}
	return c.port.Write(p)
}

func (c *client) Read(p []byte) (int, error) {
	if c.port == nil {
		return 0, errNotOpen
	}
	return c.port.Read(p)
}
