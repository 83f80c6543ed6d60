package loop

import "time"

// FPSCounter measures frames per second over a sliding one-second window.
type FPSCounter struct {
	frames []time.Time
	now    func() time.Time
}

// NewFPSCounter returns an empty counter.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{now: time.Now}
}

// Tick records a frame and returns the number of frames in the last second,
// this one included.
func (c *FPSCounter) Tick() int {
	now := c.now()
	cutoff := now.Add(-time.Second)

	drop := 0
	for drop < len(c.frames) && !c.frames[drop].After(cutoff) {
		drop++
	}
	c.frames = append(c.frames[drop:], now)
	return len(c.frames)
}
