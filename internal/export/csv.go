// Package export turns a finished session's snapshot into files other
// tools can consume.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
)

// WriteCSV emits the snapshot as elapsed_seconds,value_kg rows with a
// header line.
func WriteCSV(w io.Writer, samples []acquire.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"elapsed_seconds", "value_kg"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Elapsed, 'f', 3, 64),
			strconv.FormatFloat(s.Value, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the snapshot to path, truncating any previous file.
func WriteCSVFile(path string, samples []acquire.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, samples); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
