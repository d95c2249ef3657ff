package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallDue(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	if !fs.ShouldStep(time.Unix(0, 0)) {
		t.Fatal("first tick should be due immediately")
	}
}

func TestFixedStepGatesByInterval(t *testing.T) {
	base := time.Unix(100, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.ShouldStep(base)

	if fs.ShouldStep(base.Add(50 * time.Millisecond)) {
		t.Fatal("tick should not be due after half an interval")
	}
	if !fs.ShouldStep(base.Add(100 * time.Millisecond)) {
		t.Fatal("tick should be due after a full interval")
	}
	if fs.ShouldStep(base.Add(120 * time.Millisecond)) {
		t.Fatal("tick should not be due 20ms after the last one")
	}
}

func TestFixedStepStallBanksAtMostOne(t *testing.T) {
	base := time.Unix(100, 0)
	fs := NewFixedStep(10 * time.Millisecond)
	fs.ShouldStep(base)

	now := base.Add(time.Second)
	due := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep(now) {
			due++
		}
	}
	if due != 2 {
		t.Fatalf("expected 2 ticks after a stall, got %d", due)
	}
}

func TestFixedStepSetInterval(t *testing.T) {
	fs := NewFixedStep(time.Second)
	fs.SetInterval(0)
	if fs.Interval() != time.Millisecond {
		t.Fatalf("expected fallback interval 1ms, got %v", fs.Interval())
	}
	if got := NewFixedStepTPS(20).Interval(); got != 50*time.Millisecond {
		t.Fatalf("20 TPS should give 50ms, got %v", got)
	}
}

func TestFixedStepHoldDropsElapsed(t *testing.T) {
	base := time.Unix(100, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.ShouldStep(base)
	fs.Hold(base.Add(10 * time.Second))
	if fs.ShouldStep(base.Add(10*time.Second + 10*time.Millisecond)) {
		t.Fatal("time spent on hold must not count towards the next tick")
	}
}
