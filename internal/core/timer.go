package core

import "time"

// FixedStep gates simulation updates to at most one per interval. The
// interval may be changed at any time from the host loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller with the given interval. The
// first call to ShouldStep is always due.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// NewFixedStepTPS constructs a FixedStep controller targeting the given TPS.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetInterval changes the tick interval. Non-positive values fall back to 1ms.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	f.step = d
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick at now.
// At most one tick is granted per call and a long stall banks at most one more.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Hold discards elapsed time up to now so pausing does not bank ticks.
func (f *FixedStep) Hold(now time.Time) {
	f.last = now
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}
