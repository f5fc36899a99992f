package acquire

import "sync"

// Calibrator holds the session's zero offset. While the offset is unset,
// incoming raw values establish it instead of becoming samples. Recorded
// samples are never re-based when the offset changes.
type Calibrator struct {
	mu     sync.Mutex
	offset float64
	set    bool
}

func NewCalibrator() *Calibrator {
	return &Calibrator{}
}

// Apply feeds one raw measurement through the calibration state. When no
// offset is set the value becomes the offset and established is true; no
// sample should be recorded for that call. Otherwise the returned value
// is raw minus the offset.
func (c *Calibrator) Apply(raw float64) (value float64, established bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set {
		c.offset = raw
		c.set = true
		return raw, true
	}
	return raw - c.offset, false
}

// ManualZero overwrites the offset unconditionally.
func (c *Calibrator) ManualZero(raw float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = raw
	c.set = true
}

// Reset clears the offset; the next Apply establishes a fresh one.
func (c *Calibrator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = 0
	c.set = false
}

// Offset reports the current offset and whether one is set.
func (c *Calibrator) Offset() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset, c.set
}
