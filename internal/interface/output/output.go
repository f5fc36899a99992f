package output

import "github.com/tetragramaton/loadcell-daq/internal/acquire"

// Output consumes recorded samples. Implementations read snapshots or
// progress batches and must never mutate the store they came from.
type Output interface {
	Publish(samples []acquire.Sample) error
	Close() error
}
