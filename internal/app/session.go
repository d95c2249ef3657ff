package app

import (
	"time"

	"lifegrid/internal/core"

	"github.com/google/uuid"
)

const (
	MinInterval = 10 * time.Millisecond
	MaxInterval = 2 * time.Second
)

// Session is the host-owned loop state: iteration count, tick interval,
// pause flag and pending requests. The sim itself never sees any of it.
type Session struct {
	ID         string
	Iterations int
	Paused     bool

	timer     *core.FixedStep
	stepOnce  bool
	resetDue  bool
	resetSeed int64
}

// NewSession returns an unpaused session ticking every interval.
func NewSession(interval time.Duration) *Session {
	return &Session{
		ID:    uuid.NewString(),
		timer: core.NewFixedStep(clampInterval(interval)),
	}
}

// Interval returns the time between generations.
func (s *Session) Interval() time.Duration { return s.timer.Interval() }

// SetInterval changes the time between generations within
// [MinInterval, MaxInterval].
func (s *Session) SetInterval(d time.Duration) {
	s.timer.SetInterval(clampInterval(d))
}

// Faster halves the interval.
func (s *Session) Faster() { s.SetInterval(s.Interval() / 2) }

// Slower doubles the interval.
func (s *Session) Slower() { s.SetInterval(s.Interval() * 2) }

// TogglePause flips the pause flag.
func (s *Session) TogglePause() { s.Paused = !s.Paused }

// RequestStep asks for exactly one generation on the next tick, even while
// paused.
func (s *Session) RequestStep() { s.stepOnce = true }

// RequestReset asks for the grid to be reinitialized on the next tick. A zero
// seed leaves the choice to the sim, which repeats the seed it is running.
func (s *Session) RequestReset(seed int64) {
	s.resetDue = true
	s.resetSeed = seed
}

// Tick applies pending requests and advances sim by at most one generation.
// It reports whether a step ran.
func (s *Session) Tick(sim core.Sim, now time.Time) bool {
	if s.resetDue {
		sim.Reset(s.resetSeed)
		s.Iterations = 0
		s.resetDue = false
		s.stepOnce = false
		s.timer.Hold(now)
		return false
	}
	stepped := false
	switch {
	case s.stepOnce:
		s.stepOnce = false
		s.timer.Hold(now)
		stepped = true
	case s.Paused:
		s.timer.Hold(now)
	default:
		stepped = s.timer.ShouldStep(now)
	}
	if stepped {
		sim.Step()
		s.Iterations++
	}
	return stepped
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
