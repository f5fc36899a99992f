package acquire

import "sync"

// Store is the append-only, time-ordered sample sequence shared between
// the sampling loop (sole writer) and any number of readers. The mutex
// covers only the append/snapshot critical section; it is never held
// across transport I/O.
type Store struct {
	mu      sync.Mutex
	samples []Sample
}

func NewStore() *Store {
	return &Store{}
}

// Append adds one record. Called only from the sampling loop.
func (s *Store) Append(rec Sample) {
	s.mu.Lock()
	s.samples = append(s.samples, rec)
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of everything recorded so far. Safe
// to call from any goroutine while the writer keeps appending.
func (s *Store) Snapshot() []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.samples)
}

// Reset drops all records. Only a new session does this; stopping leaves
// the store readable.
func (s *Store) Reset() {
	s.mu.Lock()
	s.samples = nil
	s.mu.Unlock()
}
