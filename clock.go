package keyframes

import "time"

// Clock is a monotonic time source. Now returns the time elapsed since an
// arbitrary fixed origin; only differences between readings are meaningful.
type Clock interface {
	Now() time.Duration
}

type systemClock struct {
	origin time.Time
}

// SystemClock returns a Clock backed by the runtime's monotonic clock.
func SystemClock() Clock {
	return systemClock{origin: time.Now()}
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.origin)
}
