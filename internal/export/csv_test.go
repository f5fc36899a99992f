package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tetragramaton/loadcell-daq/internal/acquire"
)

func TestWriteCSV(t *testing.T) {
	samples := []acquire.Sample{
		{Elapsed: 1.0005, Value: 5.5},
		{Elapsed: 2.5, Value: -0.25},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, samples); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "elapsed_seconds,value_kg\n1.001,5.50\n2.500,-0.25\n"
	if buf.String() != want {
		t.Fatalf("csv mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestWriteCSVEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "elapsed_seconds,value_kg\n" {
		t.Fatalf("empty snapshot must still produce the header, got %q", buf.String())
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	samples := []acquire.Sample{{Elapsed: 1, Value: 2}}

	if err := WriteCSVFile(path, samples); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "elapsed_seconds,value_kg\n1.000,2.00\n" {
		t.Fatalf("file content: %q", b)
	}
}
