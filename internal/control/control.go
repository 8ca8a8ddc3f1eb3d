// Package control runs the long-lived remote session on the control port:
// the initial configure exchange, ping echoes, and key injection.
package control

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"atvremote"
	"atvremote/internal/check"
	"atvremote/internal/polo"
)

// Phase is the session step.
type Phase uint8

const (
	PhaseConfiguring Phase = iota + 1
	PhaseConfigured
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

func (p Phase) Transition(to Phase) Phase {
	ok := p == PhaseConfiguring && to == PhaseConfigured
	check.Assertf(ok, "control transition: %s -> %s", p, to)
	if !ok {
		return p
	}
	return to
}

const (
	// code1 sent in the initial configure; the TV only echoes it.
	defaultCode1 = 622

	// keyReleaseDelay separates the press and release halves of one
	// logical key press.
	keyReleaseDelay = 50 * time.Millisecond
)

// Transport is the slice of the TLS connection the session needs.
type Transport interface {
	Send(payload []byte) error
	Frames() <-chan []byte
	Err() error
}

// Machine drives one control session over one TLS connection.
type Machine struct {
	transport Transport
	device    polo.DeviceInfo
	phase     Phase

	// OnConfigured fires once, when the TV has acknowledged the session.
	// This is the moment the connection counts as established.
	OnConfigured func()
}

// New prepares a control session.
func New(t Transport, d polo.DeviceInfo) *Machine {
	return &Machine{transport: t, device: d, phase: PhaseConfiguring}
}

// Phase returns the current session step.
func (m *Machine) Phase() Phase { return m.phase }

// Run sends the initial configure and then serves the session: ping
// requests are echoed (the client never initiates pings — some TVs drop
// the connection over it), key presses from keys are injected as a
// press/release pair, everything else is logged and ignored. Run returns
// when the connection ends or ctx is cancelled.
func (m *Machine) Run(ctx context.Context, keys <-chan atvremote.Keycode) error {
	log := slog.With("component", "control")

	if err := m.transport.Send(polo.EncodeConfigure(defaultCode1, m.device)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case key := <-keys:
			if err := m.inject(ctx, key); err != nil {
				return err
			}

		case frame, ok := <-m.transport.Frames():
			if !ok {
				if err := m.transport.Err(); err != nil {
					return err
				}
				return errors.New("control: session ended")
			}

			msg, err := polo.DecodeRemote(frame)
			if err != nil {
				return err
			}

			switch {
			case msg.Configure != nil:
				if err := m.transport.Send(polo.EncodeConfigureAck(msg.Configure.Code1)); err != nil {
					return err
				}
				m.configured(log)
			case msg.ConfigureAck != nil:
				m.configured(log)
			case msg.PingRequest != nil:
				if err := m.transport.Send(polo.EncodePingResponse(msg.PingRequest.ID)); err != nil {
					return err
				}
			default:
				log.Debug("unhandled message", "field", msg.Unknown)
			}
		}
	}
}

func (m *Machine) configured(log *slog.Logger) {
	if m.phase == PhaseConfigured {
		return
	}
	m.phase = m.phase.Transition(PhaseConfigured)
	log.Info("session configured")
	if m.OnConfigured != nil {
		m.OnConfigured()
	}
}

// inject sends the press immediately and the release after the standard
// delay, keeping both on this session in order.
func (m *Machine) inject(ctx context.Context, key atvremote.Keycode) error {
	if err := m.transport.Send(polo.EncodeKeyInject(int32(key), polo.DirectionPress)); err != nil {
		return err
	}

	timer := time.NewTimer(keyReleaseDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	return m.transport.Send(polo.EncodeKeyInject(int32(key), polo.DirectionRelease))
}
