package frame

import "time"

// Counter measures frames per second over a fixed window. The published value
// only changes when a window closes, so it reads steadily in a title bar.
type Counter struct {
	window time.Duration
	start time.Time
	frames int
	fps float64
}

func NewCounter(window time.Duration) *Counter {
	return &Counter{window: window}
}

// Tick records a frame at now and reports whether a new rate was published.
func (c *Counter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

func (c *Counter) FPS() float64 {
	return c.fps
}
