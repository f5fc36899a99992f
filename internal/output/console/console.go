package console

import (
	"fmt"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
	"github.com/tetragramaton/loadcell-daq/internal/interface/output"
)

// Output prints samples as a live feed on stdout, one line per record.
type Output struct{}

func New() output.Output { return &Output{} }

func (c *Output) Publish(samples []acquire.Sample) error {
	for _, s := range samples {
		fmt.Printf("%8.2f s  %8.2f kg\n", s.Elapsed, s.Value)
	}
	return nil
}

func (c *Output) Close() error { return nil }
