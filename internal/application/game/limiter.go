package game

import "time"

// MaxLag caps the dt handed to the room after a hitch.
const MaxLag = 4.0

// FPSLimiter paces frames to a fixed rate and measures how late each one
// ran.
type FPSLimiter struct {
	target time.Duration
	next   time.Time
	last   time.Time
}

// NewFPSLimiter creates a limiter for fps frames per second. fps <= 0
// disables waiting.
func NewFPSLimiter(fps int) *FPSLimiter {
	f := &FPSLimiter{}
	if fps > 0 {
		f.target = time.Second / time.Duration(fps)
	}
	return f
}

// Wait blocks until the next frame should start.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	if f.target <= 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(f.target)
	} else {
		f.next = f.next.Add(f.target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > f.target {
		f.next = time.Now().Add(f.target)
	}
}

// DT returns the time since the previous call in frame periods, clamped to
// [0, MaxLag]. The first call returns 1.
func (f *FPSLimiter) DT(now time.Time) float64 {
	prev := f.last
	f.last = now
	if prev.IsZero() || f.target <= 0 {
		return 1
	}
	dt := float64(now.Sub(prev)) / float64(f.target)
	return min(max(dt, 0), MaxLag)
}
