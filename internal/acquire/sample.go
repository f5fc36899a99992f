// Package acquire holds the acquisition pipeline: the retrying reader,
// the zero-point calibration state, the shared sample store and the
// sampling session itself.
package acquire

import "time"

// Sample is one recorded measurement. Elapsed counts from the session
// start; Value is the zero-adjusted load in kilograms.
type Sample struct {
	At      time.Time `json:"at"`
	Elapsed float64   `json:"elapsed_s"`
	Value   float64   `json:"value_kg"`
}

// Logger is the subset of the logging service the pipeline needs.
type Logger interface {
	Info(format string, a ...interface{})
	Error(format string, a ...interface{})
}

// Observer receives the failure events of individual read attempts.
// Failures never surface to the reader's caller.
type Observer interface {
	ReadFailed(attempt, max int, err error)
}
