package acquire

import (
	"fmt"
	"time"

	"github.com/tetragramaton/loadcell-daq/internal/interface/transport"
	"github.com/tetragramaton/loadcell-daq/internal/protocol"
)

// ReaderConfig bounds one measurement: how many query attempts, how long
// to let the device settle after a write, and the pause between retries.
// The backoff is independent of the sampler's polling interval.
type ReaderConfig struct {
	Retries int
	Settle  time.Duration
	Backoff time.Duration
}

func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Retries: 3,
		Settle:  100 * time.Millisecond,
		Backoff: time.Second,
	}
}

// Reader issues the fixed query and decodes the response, retrying
// transient failures up to the configured bound. It owns no state beyond
// its configuration; the transport is driven by one goroutine at a time.
type Reader struct {
	transport transport.Client
	cfg       ReaderConfig
	obs       Observer
}

func NewReader(t transport.Client, cfg ReaderConfig, obs Observer) *Reader {
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}
	return &Reader{transport: t, cfg: cfg, obs: obs}
}

// Read performs up to Retries exchanges and returns the first successfully
// decoded raw measurement in kilograms, not yet zero-adjusted. Every failed
// attempt is reported to the observer; the caller only learns whether a
// value was obtained.
func (r *Reader) Read() (float64, bool) {
	for attempt := 1; attempt <= r.cfg.Retries; attempt++ {
		raw, err := r.exchange()
		if err != nil {
			r.obs.ReadFailed(attempt, r.cfg.Retries, err)
			if attempt < r.cfg.Retries {
				time.Sleep(r.cfg.Backoff)
			}
			continue
		}
		return protocol.Scale(raw), true
	}
	return 0, false
}

func (r *Reader) exchange() (uint16, error) {
	if _, err := r.transport.Write(protocol.QueryFrame()); err != nil {
		return 0, fmt.Errorf("write query: %w", err)
	}
	time.Sleep(r.cfg.Settle)
	buf := make([]byte, protocol.ResponseBufLen)
	n, err := r.transport.Read(buf)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}
	return protocol.DecodeResponse(buf[:n])
}
