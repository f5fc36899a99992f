// Package sim is a scripted stand-in for the transducer. It answers every
// query with the next frame of its profile, cycling when the profile is
// exhausted. Useful on the bench without hardware and in tests that drive
// the whole acquisition loop.
package sim

import (
	"errors"
	"sync"

	"github.com/tetragramaton/loadcell-daq/internal/interface/transport"
	"github.com/tetragramaton/loadcell-daq/internal/protocol"
)

// Step is one scripted exchange. If Err is set the read attempt fails
// with it; otherwise a well-formed response frame for Raw is returned.
type Step struct {
	Raw uint16
	Err error
}

type Transducer struct {
	mu     sync.Mutex
	steps  []Step
	next   int
	served int
	open   bool
}

var errNotOpen = errors.New("sim: transducer not open")

func New(steps []Step) *Transducer {
	return &Transducer{steps: steps}
}

// FromKilograms builds a transducer whose profile is the given loads in
// kilograms, pre-scaled to raw counts.
func FromKilograms(kg ...float64) *Transducer {
	steps := make([]Step, 0, len(kg))
	for _, v := range kg {
		steps = append(steps, Step{Raw: uint16(v * 100)})
	}
	return New(steps)
}

func (t *Transducer) Open() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = true
	return nil
}

func (t *Transducer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = false
	return nil
}

// Write accepts any query. The device profile is fixed, so the request
// bytes are not inspected.
func (t *Transducer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return 0, errNotOpen
	}
	return len(p), nil
}

func (t *Transducer) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return 0, errNotOpen
	}
	if len(t.steps) == 0 {
		return 0, errors.New("sim: empty profile")
	}
	step := t.steps[t.next]
	t.next = (t.next + 1) % len(t.steps)
	t.served++
	if step.Err != nil {
		return 0, step.Err
	}
	return copy(p, protocol.EncodeResponse(step.Raw)), nil
}

// Exchanges reports how many reads have been served.
func (t *Transducer) Exchanges() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.served
}

var _ transport.Client = (*Transducer)(nil)
