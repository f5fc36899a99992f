package acquire

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/tetragramaton/loadcell-daq/internal/mocks"
	"github.com/tetragramaton/loadcell-daq/internal/protocol"
)

type countObserver struct {
	failures int
}

func (c *countObserver) ReadFailed(attempt, max int, err error) {
	c.failures++
}

func fastReaderConfig() ReaderConfig {
	return ReaderConfig{Retries: 3, Settle: 0, Backoff: 0}
}

func TestReaderRecoversAfterTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockClient(ctrl)
	tr.EXPECT().Write(gomock.Any()).Return(len(protocol.QueryFrame()), nil).Times(3)
	gomock.InOrder(
		tr.EXPECT().Read(gomock.Any()).Return(0, errors.New("i/o timeout")),
		tr.EXPECT().Read(gomock.Any()).Return(0, errors.New("i/o timeout")),
		tr.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, protocol.EncodeResponse(10250)), nil
		}),
	)

	obs := &countObserver{}
	r := NewReader(tr, fastReaderConfig(), obs)

	value, ok := r.Read()
	if !ok {
		t.Fatalf("expected a measurement after recovery")
	}
	if value != 102.50 {
		t.Fatalf("value = %v; want 102.50", value)
	}
	if obs.failures != 2 {
		t.Fatalf("failure events = %d; want 2", obs.failures)
	}
}

func TestReaderExhaustsRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockClient(ctrl)
	tr.EXPECT().Write(gomock.Any()).Return(len(protocol.QueryFrame()), nil).Times(3)
	tr.EXPECT().Read(gomock.Any()).Return(0, errors.New("i/o timeout")).Times(3)

	obs := &countObserver{}
	r := NewReader(tr, fastReaderConfig(), obs)

	if _, ok := r.Read(); ok {
		t.Fatalf("expected no measurement when every attempt fails")
	}
	if obs.failures != 3 {
		t.Fatalf("failure events = %d; want 3", obs.failures)
	}
}

func TestReaderShortFrameRetriesLikeTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockClient(ctrl)
	tr.EXPECT().Write(gomock.Any()).Return(len(protocol.QueryFrame()), nil).Times(2)
	gomock.InOrder(
		// truncated response: 3 bytes is below the decodable minimum
		tr.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, []byte{0x01, 0x03, 0x02}), nil
		}),
		tr.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, protocol.EncodeResponse(500)), nil
		}),
	)

	obs := &countObserver{}
	r := NewReader(tr, fastReaderConfig(), obs)

	value, ok := r.Read()
	if !ok || value != 5.00 {
		t.Fatalf("value, ok = %v, %v; want 5.00, true", value, ok)
	}
	if obs.failures != 1 {
		t.Fatalf("failure events = %d; want 1", obs.failures)
	}
}

func TestReaderWriteFailureCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockClient(ctrl)
	tr.EXPECT().Write(gomock.Any()).Return(0, errors.New("port gone")).Times(3)

	obs := &countObserver{}
	r := NewReader(tr, fastReaderConfig(), obs)

	if _, ok := r.Read(); ok {
		t.Fatalf("expected failure when the write never succeeds")
	}
	if obs.failures != 3 {
		t.Fatalf("failure events = %d; want 3", obs.failures)
	}
}
