package counter

import "sync/atomic"

// Counter is the shared remaining-seconds cell.
// Thread-Safety:
//   - Get: lock-free load, any goroutine
//   - DecrementIfPositive: lock-free CAS, sole mutator
//
// The value stays within [0, initial]: the CAS guard makes a decrement
// at zero a no-op, so racing ticks can never drive it negative.
type Counter struct {
	val atomic.Int64
}

// New creates a counter holding the initial number of seconds.
// A negative initial value is clamped to zero.
func New(initial int) *Counter {
	c := &Counter{}
	if initial < 0 {
		initial = 0
	}
	c.val.Store(int64(initial))
	return c
}

// Get returns the current value without blocking.
func (c *Counter) Get() int {
	return int(c.val.Load())
}

// DecrementIfPositive atomically decrements the counter by one and
// reports whether a decrement happened. At zero it leaves the value
// unchanged and returns false.
func (c *Counter) DecrementIfPositive() bool {
	for {
		cur := c.val.Load()
		if cur <= 0 {
			return false
		}
		if c.val.CompareAndSwap(cur, cur-1) {
			return true
		}
	}
}
