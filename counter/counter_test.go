package counter

import "testing"

// TestFullRun verifies a countdown of d seconds decrements exactly d
// times and ends at zero, never negative.
func TestFullRun(t *testing.T) {
	durations := []int{0, 1, 3, 10, 100}

	for _, d := range durations {
		c := New(d)

		decrements := 0
		for c.DecrementIfPositive() {
			decrements++
			if decrements > d {
				t.Fatalf("duration %d: more decrements than initial value", d)
			}
		}

		if decrements != d {
			t.Errorf("duration %d: got %d decrements, want %d", d, decrements, d)
		}
		if got := c.Get(); got != 0 {
			t.Errorf("duration %d: final value = %d, want 0", d, got)
		}
	}
}

// TestDecrementAtZeroIsNoOp verifies the zero guard is idempotent:
// any number of decrements on a drained counter leave it at zero.
func TestDecrementAtZeroIsNoOp(t *testing.T) {
	c := New(0)

	for i := 0; i < 10; i++ {
		if c.DecrementIfPositive() {
			t.Fatalf("call %d: decrement reported success on zero counter", i)
		}
		if got := c.Get(); got != 0 {
			t.Fatalf("call %d: value = %d, want 0", i, got)
		}
	}
}

func TestNewClampsNegative(t *testing.T) {
	c := New(-5)
	if got := c.Get(); got != 0 {
		t.Errorf("New(-5).Get() = %d, want 0", got)
	}
	if c.DecrementIfPositive() {
		t.Error("decrement succeeded on clamped counter")
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	c := New(3)
	for i := 0; i < 5; i++ {
		if got := c.Get(); got != 3 {
			t.Fatalf("Get() = %d, want 3", got)
		}
	}
}
