package monitor

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can drive the poll cadence.
// Production code uses the real clock; tests inject a fake for deterministic
// scheduling.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for interval sleeps. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
