// Package pairing runs the client side of the Polo v2 code handshake on the
// pairing port: request, options, configuration, then the secret digest
// binding both peers' RSA keys to the code on the TV's screen.
package pairing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"atvremote/internal/check"
	"atvremote/internal/identity"
	"atvremote/internal/polo"
)

// Phase is the handshake step the client is in.
type Phase uint8

const (
	PhaseStart Phase = iota + 1
	PhaseAwaitRequestAck
	PhaseAwaitOptionsAck
	PhaseAwaitConfigurationAck
	PhaseShowCode
	PhaseAwaitSecretAck
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseAwaitRequestAck:
		return "await_request_ack"
	case PhaseAwaitOptionsAck:
		return "await_options_ack"
	case PhaseAwaitConfigurationAck:
		return "await_configuration_ack"
	case PhaseShowCode:
		return "show_code"
	case PhaseAwaitSecretAck:
		return "await_secret_ack"
	case PhaseSuccess:
		return "success"
	default:
		return "unknown"
	}
}

func (p Phase) Transition(to Phase) Phase {
	ok := false
	switch p {
	case PhaseStart:
		ok = to == PhaseAwaitRequestAck
	case PhaseAwaitRequestAck:
		ok = to == PhaseAwaitOptionsAck
	case PhaseAwaitOptionsAck:
		ok = to == PhaseAwaitConfigurationAck
	case PhaseAwaitConfigurationAck:
		ok = to == PhaseShowCode
	case PhaseShowCode:
		ok = to == PhaseAwaitSecretAck
	case PhaseAwaitSecretAck:
		ok = to == PhaseSuccess || to == PhaseShowCode
	}
	check.Assertf(ok, "pairing transition: %s -> %s", p, to)
	if !ok {
		return p
	}
	return to
}

// ErrBadSecret is never returned from Run; it is logged when the TV answers
// 402, just before OnCodeNeeded(true) re-prompts for a code.
var ErrBadSecret = errors.New("pairing: TV rejected the secret")

// defaultAckTimeout covers firmwares that close the pairing session without
// sending an explicit secret ack: after this long the secret is assumed
// accepted and the client moves to the control port.
const defaultAckTimeout = 3 * time.Second

// badSecretQuirkThreshold is how many consecutive 402s trigger the log hint
// about the known 31-byte-digest firmware quirk.
const badSecretQuirkThreshold = 3

// Transport is the slice of the TLS connection the handshake needs.
type Transport interface {
	Send(payload []byte) error
	Frames() <-chan []byte
	ServerCertificate() []byte
	Err() error
}

// Machine drives one pairing session over one TLS connection.
type Machine struct {
	transport   Transport
	client      identity.RSAPublicParams
	clientName  string
	serviceName string
	device      polo.DeviceInfo

	phase Phase

	// OnCodeNeeded tells the UI to collect a code; retry is true after a
	// 402, on the same TLS session.
	OnCodeNeeded func(retry bool)

	// AckTimeout overrides the secret-ack watchdog; zero means the default.
	AckTimeout time.Duration
}

// New prepares a handshake. The client certificate's RSA parameters are
// extracted up front; failure here is fatal for pairing.
func New(t Transport, clientCert []byte, clientName, serviceName string, d polo.DeviceInfo) (*Machine, error) {
	params, err := identity.ExtractRSAParams(clientCert)
	if err != nil {
		return nil, err
	}
	return &Machine{
		transport:   t,
		client:      params,
		clientName:  clientName,
		serviceName: serviceName,
		device:      d,
		phase:       PhaseStart,
	}, nil
}

// Phase returns the current handshake step.
func (m *Machine) Phase() Phase { return m.phase }

// Run executes the handshake to completion. Codes entered by the user
// arrive on codes; each is hashed and submitted, and a 402 re-prompts on
// the same session. Run returns nil once the TV acknowledges the secret,
// or once the watchdog decides a silent TV accepted it.
func (m *Machine) Run(ctx context.Context, codes <-chan string) error {
	log := slog.With("component", "pairing")

	server, err := identity.ExtractRSAParams(m.transport.ServerCertificate())
	if err != nil {
		return err
	}

	if err := m.transport.Send(polo.EncodePairingRequest(m.clientName, m.serviceName, m.device)); err != nil {
		return err
	}
	m.phase = m.phase.Transition(PhaseAwaitRequestAck)

	var (
		ackTimer   *time.Timer
		ackC       <-chan time.Time
		codeC      <-chan string
		badSecrets int
	)
	stopTimer := func() {
		if ackTimer != nil {
			ackTimer.Stop()
			ackTimer, ackC = nil, nil
		}
	}
	defer stopTimer()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case code, ok := <-codeC:
			if !ok {
				return errors.New("pairing: code source closed")
			}
			secret, err := Secret(m.client, server, code)
			if err != nil {
				return err
			}
			if header := Header(secret); !strings.EqualFold(header, code[:2]) {
				// The TV will reject this; say why before it does.
				log.Debug("code header mismatch", "expected", header)
			}
			if err := m.transport.Send(polo.EncodeSecret(secret)); err != nil {
				return err
			}
			m.phase = m.phase.Transition(PhaseAwaitSecretAck)
			codeC = nil
			ackTimer = time.NewTimer(m.ackTimeout())
			ackC = ackTimer.C

		case <-ackC:
			// No ack, no 402: some firmwares drop the pairing session
			// right after a good secret. Assume success.
			log.Debug("secret ack timed out, assuming success")
			m.phase = m.phase.Transition(PhaseSuccess)
			return nil

		case frame, ok := <-m.transport.Frames():
			if !ok {
				if m.phase == PhaseAwaitSecretAck {
					log.Debug("session closed while awaiting secret ack, assuming success", "err", m.transport.Err())
					m.phase = m.phase.Transition(PhaseSuccess)
					return nil
				}
				if err := m.transport.Err(); err != nil {
					return err
				}
				return errors.New("pairing: session ended before completion")
			}

			msg, err := polo.DecodePairing(frame)
			if err != nil {
				return err
			}

			if msg.Status == polo.StatusBadSecret {
				stopTimer()
				badSecrets++
				if badSecrets == badSecretQuirkThreshold {
					log.Warn("repeated 402 responses; some firmwares expect a truncated 31-byte digest, which this client intentionally never sends")
				}
				log.Info("TV rejected the code", "err", ErrBadSecret)
				m.phase = m.phase.Transition(PhaseShowCode)
				codeC = codes
				m.codeNeeded(true)
				continue
			}
			if msg.Status != polo.StatusOK {
				return fmt.Errorf("pairing: TV answered status %d in phase %s", msg.Status, m.phase)
			}

			switch m.phase {
			case PhaseAwaitRequestAck:
				if msg.Next < polo.FieldPairingRequest {
					continue
				}
				if err := m.transport.Send(polo.EncodeOptions()); err != nil {
					return err
				}
				m.phase = m.phase.Transition(PhaseAwaitOptionsAck)

			case PhaseAwaitOptionsAck:
				if msg.Next < polo.FieldOptions {
					continue
				}
				if err := m.transport.Send(polo.EncodeConfiguration()); err != nil {
					return err
				}
				m.phase = m.phase.Transition(PhaseAwaitConfigurationAck)

			case PhaseAwaitConfigurationAck:
				if msg.Next < polo.FieldConfiguration {
					continue
				}
				m.phase = m.phase.Transition(PhaseShowCode)
				codeC = codes
				m.codeNeeded(false)

			case PhaseAwaitSecretAck:
				if msg.Next < polo.FieldSecret {
					continue
				}
				stopTimer()
				m.phase = m.phase.Transition(PhaseSuccess)
				log.Info("pairing complete")
				return nil

			default:
				log.Debug("message ignored", "phase", m.phase, "field", msg.Next)
			}
		}
	}
}

func (m *Machine) ackTimeout() time.Duration {
	if m.AckTimeout > 0 {
		return m.AckTimeout
	}
	return defaultAckTimeout
}

func (m *Machine) codeNeeded(retry bool) {
	if m.OnCodeNeeded != nil {
		m.OnCodeNeeded(retry)
	}
}
