package acquire

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrAlreadyRunning = errors.New("acquire: session already running")
	ErrNotRunning     = errors.New("acquire: no active session")
	ErrZeroReadFailed = errors.New("acquire: zero read failed")
)

// SamplerConfig sets the polling cadence and how long Stop waits for the
// loop to exit. The interval is independent of the reader's retry backoff.
type SamplerConfig struct {
	Interval time.Duration
	JoinWait time.Duration
}

func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Interval: time.Second,
		JoinWait: 5 * time.Second,
	}
}

// Notify is invoked for every appended sample, from the sampling
// goroutine. It must not block for long.
type Notify func(Sample)

// Sampler owns the acquisition session: one polling goroutine that is the
// exclusive writer to the store and the calibration offset. Start and
// Stop move it between Idle and Running; everything else is safe to call
// from any goroutine in either state.
type Sampler struct {
	cfg    SamplerConfig
	reader *Reader
	cal    *Calibrator
	store  *Store
	log    Logger
	notify Notify

	mu      sync.Mutex
	running bool
	started time.Time
	stop    chan struct{}
	done    chan struct{}

	zeroReq chan chan error
}

func NewSampler(reader *Reader, cal *Calibrator, store *Store, cfg SamplerConfig, log Logger) *Sampler {
	return &Sampler{
		cfg:     cfg,
		reader:  reader,
		cal:     cal,
		store:   store,
		log:     log,
		zeroReq: make(chan chan error),
	}
}

// SetNotify installs the progress hook. Must be called before Start.
func (s *Sampler) SetNotify(fn Notify) {
	s.notify = fn
}

// Start opens a fresh session: the store and the zero offset are reset,
// the session clock starts and the polling loop begins on its own
// goroutine. The first successful read establishes the zero offset.
func (s *Sampler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	s.store.Reset()
	s.cal.Reset()
	s.started = time.Now()
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true
	go s.loop(s.stop, s.done, s.started)
	return nil
}

// Stop signals the loop and waits for it, bounded by JoinWait. The store
// stays intact and readable; only the next Start clears it.
func (s *Sampler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrNotRunning
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	select {
	case <-done:
	case <-time.After(s.cfg.JoinWait):
		s.log.Error("sampling loop did not exit within %v", s.cfg.JoinWait)
	}
	return nil
}

// Running reports whether a session is active.
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Snapshot returns a consistent copy of the session's samples. Valid in
// any state; after Stop it still serves the finished session.
func (s *Sampler) Snapshot() []Sample {
	return s.store.Snapshot()
}

// ManualZero re-bases the offset from a fresh reading, in any state.
// While a session runs the read is serviced by the polling loop so the
// transport stays single-threaded; when idle the read happens directly.
// A failed read leaves the offset unchanged.
func (s *Sampler) ManualZero() error {
	s.mu.Lock()
	running := s.running
	stop := s.stop
	s.mu.Unlock()

	if !running {
		return s.zeroNow()
	}

	reply := make(chan error, 1)
	select {
	case s.zeroReq <- reply:
	case <-stop:
		return ErrNotRunning
	}
	select {
	case err := <-reply:
		return err
	case <-stop:
		return ErrNotRunning
	}
}

func (s *Sampler) zeroNow() error {
	raw, ok := s.reader.Read()
	if !ok {
		return ErrZeroReadFailed
	}
	s.cal.ManualZero(raw)
	s.log.Info("zero set manually, offset %.2f kg", raw)
	return nil
}

func (s *Sampler) loop(stop, done chan struct{}, started time.Time) {
	defer close(done)
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case reply := <-s.zeroReq:
			reply <- s.zeroNow()
		case <-ticker.C:
			s.sampleOnce(started)
		}
	}
}

func (s *Sampler) sampleOnce(started time.Time) {
	raw, ok := s.reader.Read()
	if !ok {
		s.log.Error("sample skipped: all read attempts failed")
		return
	}
	value, established := s.cal.Apply(raw)
	if established {
		s.log.Info("zero established, offset %.2f kg", value)
		return
	}
	now := time.Now()
	rec := Sample{At: now, Elapsed: now.Sub(started).Seconds(), Value: value}
	s.store.Append(rec)
	if s.notify != nil {
		s.notify(rec)
	}
}
