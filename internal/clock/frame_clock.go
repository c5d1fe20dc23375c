package clock

import "time"

// FrameClock measures the time between frames. Restart returns the time since
// the previous Restart and starts a new interval, so restarting on resume
// throws the paused gap away.
type FrameClock struct {
	provider TimeProvider
	start    time.Time
}

func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{provider: provider, start: provider.Now()}
}

func (c *FrameClock) Restart() time.Duration {
	now := c.provider.Now()
	elapsed := now.Sub(c.start)
	c.start = now
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Elapsed returns the time since the last Restart without restarting.
func (c *FrameClock) Elapsed() time.Duration {
	return c.provider.Now().Sub(c.start)
}
