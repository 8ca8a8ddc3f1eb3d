// Package ntp tracks local clock health. TLS to the TV fails in confusing
// ways when the clock is far off (certificate validity windows); the daemon
// surfaces the clock phase (healthy, skewed, error) so that failure mode is
// visible. The measured offset is kept in Status but not reported.
package ntp

import (
	"context"
	"sync"
	"time"

	"atvremote/internal/check"

	"github.com/beevik/ntp"
)

const (
	defaultPool      = "pool.ntp.org"
	defaultInterval  = 60 * time.Second
	defaultThreshold = 500 * time.Millisecond
)

type Phase uint8

const (
	PhaseUnchecked Phase = iota + 1
	PhaseHealthy
	PhaseSkewed
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseUnchecked:
		return "unchecked"
	case PhaseHealthy:
		return "healthy"
	case PhaseSkewed:
		return "skewed"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Transition validates a phase change; staying in place is always legal.
func (p Phase) Transition(to Phase) Phase {
	if p == to {
		return to
	}
	ok := false
	switch p {
	case PhaseUnchecked:
		ok = to == PhaseHealthy || to == PhaseSkewed || to == PhaseError
	case PhaseHealthy:
		ok = to == PhaseSkewed || to == PhaseError
	case PhaseSkewed:
		ok = to == PhaseHealthy || to == PhaseError
	case PhaseError:
		ok = to == PhaseHealthy || to == PhaseSkewed
	}
	check.Assertf(ok, "ntp transition: %s -> %s", p, to)
	if !ok {
		return p
	}
	return to
}

// Status is the latest measurement.
type Status struct {
	Phase     Phase
	Offset    time.Duration
	Error     string
	CheckedAt time.Time
}

// Checker polls an NTP pool and classifies the local clock offset.
type Checker struct {
	mu        sync.RWMutex
	status    Status
	pool      string
	interval  time.Duration
	threshold time.Duration

	// CheckFunc replaces the network query in tests.
	CheckFunc func() Status
}

func NewChecker() *Checker {
	return &Checker{
		pool:      defaultPool,
		interval:  defaultInterval,
		threshold: defaultThreshold,
		status:    Status{Phase: PhaseUnchecked},
	}
}

// Run checks immediately and then on the interval until ctx is done.
func (c *Checker) Run(ctx context.Context) {
	c.checkOnce()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.checkOnce()
		}
	}
}

// Status returns the latest measurement.
func (c *Checker) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Checker) checkOnce() {
	if c.CheckFunc != nil {
		next := c.CheckFunc()
		c.mu.Lock()
		next.Phase = c.status.Phase.Transition(next.Phase)
		c.status = next
		c.mu.Unlock()
		return
	}

	resp, err := ntp.Query(c.pool)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if err != nil {
		c.status = Status{
			Phase:     c.status.Phase.Transition(PhaseError),
			Error:     err.Error(),
			CheckedAt: now,
		}
		return
	}

	phase := PhaseHealthy
	if resp.ClockOffset > c.threshold || resp.ClockOffset < -c.threshold {
		phase = PhaseSkewed
	}
	c.status = Status{
		Phase:     c.status.Phase.Transition(phase),
		Offset:    resp.ClockOffset,
		CheckedAt: now,
	}
}
