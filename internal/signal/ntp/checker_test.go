package ntp

import (
	"testing"
	"time"
)

func TestPhaseTransitions(t *testing.T) {
	p := PhaseUnchecked
	p = p.Transition(PhaseHealthy)
	p = p.Transition(PhaseHealthy) // staying put is legal
	p = p.Transition(PhaseSkewed)
	p = p.Transition(PhaseHealthy)
	p = p.Transition(PhaseError)
	if p = p.Transition(PhaseHealthy); p != PhaseHealthy {
		t.Fatalf("phase = %v, want healthy", p)
	}
}

func TestCheckFuncDrivesStatus(t *testing.T) {
	c := NewChecker()
	c.CheckFunc = func() Status {
		return Status{Phase: PhaseSkewed, Offset: time.Second, CheckedAt: time.Now()}
	}

	c.checkOnce()

	got := c.Status()
	if got.Phase != PhaseSkewed || got.Offset != time.Second {
		t.Fatalf("status = %+v, want skewed with 1s offset", got)
	}
}

func TestFreshCheckerUnchecked(t *testing.T) {
	if got := NewChecker().Status(); got.Phase != PhaseUnchecked {
		t.Fatalf("phase = %v, want unchecked", got.Phase)
	}
}
