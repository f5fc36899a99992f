// Package protocol implements the fixed query/response exchange of the
// CW-series load-cell transducer. The device answers exactly one register
// read; there is no general register addressing here.
package protocol

import (
	"errors"
	"fmt"

	"github.com/npat-efault/crc16"
)

const (
	deviceAddress = 0x01
	functionRead  = 0x03

	// MinResponseLen is the shortest response the decoder accepts: the
	// measured value sits at byte offsets 3 and 4.
	MinResponseLen = 5

	// ResponseBufLen is how many bytes one exchange reads from the port.
	ResponseBufLen = 7
)

// ErrShortFrame is returned when a response carries fewer than
// MinResponseLen bytes.
var ErrShortFrame = errors.New("protocol: short response frame")

var queryFrame = buildQuery()

func buildQuery() []byte {
	// address, function, register 0x0000, count 0x0001
	frame := []byte{deviceAddress, functionRead, 0x00, 0x00, 0x00, 0x01}
	sum := crc16.Checksum(crc16.Modbus, frame)
	return append(frame, byte(sum), byte(sum>>8))
}

// QueryFrame returns the constant 8-byte request
// 01 03 00 00 00 01 84 0A. Callers must not modify the result.
func QueryFrame() []byte {
	return queryFrame
}

// DecodeResponse extracts the raw 16-bit reading from a response frame.
// Only bytes 3 and 4 are interpreted, big endian; header and trailing
// bytes are not validated and no CRC check is performed. The transducer
// is the only peer on the line, so stricter framing buys nothing.
func DecodeResponse(buf []byte) (uint16, error) {
	if len(buf) < MinResponseLen {
		return 0, fmt.Errorf("%w: got %d bytes, need %d", ErrShortFrame, len(buf), MinResponseLen)
	}
	return uint16(buf[3])<<8 | uint16(buf[4]), nil
}

// Scale converts a raw reading to kilograms.
func Scale(raw uint16) float64 {
	return float64(raw) / 100.0
}

// EncodeResponse builds a well-formed 7-byte response frame for the given
// raw reading. The real transducer produces these; the simulated one and
// the tests use this to stay wire-accurate.
func EncodeResponse(raw uint16) []byte {
	frame := []byte{deviceAddress, functionRead, 0x02, byte(raw >> 8), byte(raw)}
	sum := crc16.Checksum(crc16.Modbus, frame)
	return append(frame, byte(sum), byte(sum>>8))
}
