// Package session supervises the single logical connection to a TV: it
// owns at most one transport, runs the pairing or control machine over it,
// and applies the reconnect policies around discovery, transient loss, and
// suspend/resume.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"atvremote"
	"atvremote/internal/check"
	"atvremote/internal/control"
	"atvremote/internal/discovery"
	"atvremote/internal/identity"
	"atvremote/internal/pairing"
	"atvremote/internal/polo"
	"atvremote/internal/store"
	"atvremote/internal/transport"
	"atvremote/internal/watch"
)

const (
	// resolveTimeout bounds mDNS resolution of a selected service.
	resolveTimeout = 5 * time.Second
	// controlRetryDelay is the pause before re-dialing the control port
	// after transient loss. The pairing port is never the fallback: that
	// would re-prompt for a code over a network blip.
	controlRetryDelay = 2 * time.Second
	// resumeSettleDelay gives the OS network stack time to come back
	// after wake before reconnecting.
	resumeSettleDelay = 3 * time.Second

	keyQueueCap  = 8
	codeQueueCap = 1
)

// ErrNotPairing reports a code submitted while no handshake is waiting.
var ErrNotPairing = errors.New("session: no pairing in progress")

// ErrNotConnected reports a key sent without an established session.
var ErrNotConnected = errors.New("session: not connected")

type linkKind uint8

const (
	linkPairing linkKind = iota + 1
	linkControl
)

func (k linkKind) String() string {
	switch k {
	case linkPairing:
		return "pairing"
	case linkControl:
		return "control"
	default:
		return "unknown"
	}
}

// link is one connection attempt or active session.
type link struct {
	kind   linkKind
	addr   netip.Addr
	cancel context.CancelFunc
	codes  chan string
	keys   chan atvremote.Keycode
}

type result struct {
	link *link
	err  error
}

type resolved struct {
	name string
	addr netip.Addr
	err  error
}

type command struct {
	run   func(ctx context.Context) error
	reply chan error
}

// Session supervises the connection. All mutable state lives on the Run
// goroutine; the exported methods post commands to it.
type Session struct {
	identity *identity.Identity
	store    *store.Store
	broker   *watch.Broker
	browser  *discovery.Browser

	clientName  string
	serviceName string
	device      polo.DeviceInfo

	cmds     chan command
	results  chan result
	resolves chan resolved

	// ports are the protocol defaults; tests point them at fixtures.
	pairingPort int
	controlPort int

	// loop state, owned by Run
	active     *link
	suspended  bool
	retryAddr  netip.Addr
	retryC     <-chan time.Time
	retryTimer *time.Timer
}

// Config collects the session's injected dependencies.
type Config struct {
	Identity    *identity.Identity
	Store       *store.Store
	Broker      *watch.Broker
	Browser     *discovery.Browser
	ClientName  string
	ServiceName string
	Device      polo.DeviceInfo
}

func New(cfg Config) *Session {
	check.Assert(cfg.Identity != nil, "session.New: identity must not be nil")
	check.Assert(cfg.Store != nil, "session.New: store must not be nil")
	check.Assert(cfg.Broker != nil, "session.New: broker must not be nil")

	return &Session{
		identity:    cfg.Identity,
		store:       cfg.Store,
		broker:      cfg.Broker,
		browser:     cfg.Browser,
		clientName:  cfg.ClientName,
		serviceName: cfg.ServiceName,
		device:      cfg.Device,
		cmds:        make(chan command),
		results:     make(chan result, 2),
		resolves:    make(chan resolved, 2),
		pairingPort: atvremote.PairingPort,
		controlPort: atvremote.ControlPort,
	}
}

// Run supervises until ctx is cancelled. On startup it reconnects to the
// last configured TV if one is known, otherwise it waits for the user to
// pick a discovered device.
func (s *Session) Run(ctx context.Context) error {
	log := slog.With("component", "session")

	go s.watchSleep(ctx)

	if addr, ok, err := s.store.LastDevice(); err != nil {
		log.Warn("last device unavailable", "err", err)
		s.publish(atvremote.StateSearching, "", false, "")
	} else if ok {
		log.Info("reconnecting to last device", "addr", addr)
		s.start(ctx, linkControl, addr)
	} else {
		s.publish(atvremote.StateSearching, "", false, "")
	}

	for {
		select {
		case <-ctx.Done():
			s.stopLink()
			return ctx.Err()

		case cmd := <-s.cmds:
			cmd.reply <- cmd.run(ctx)

		case res := <-s.resolves:
			s.onResolved(ctx, res)

		case res := <-s.results:
			s.onResult(ctx, res)

		case <-s.retryC:
			s.clearRetry()
			if s.suspended {
				continue
			}
			log.Info("retrying control port", "addr", s.retryAddr)
			s.publish(atvremote.StateConnecting, "", false, s.retryAddr.String())
			s.start(ctx, linkControl, s.retryAddr)
		}
	}
}

// do posts fn to the supervisor goroutine and waits for it. fn receives
// the supervisor's context, not the caller's: work it spawns must outlive
// the API call that requested it.
func (s *Session) do(ctx context.Context, fn func(ctx context.Context) error) error {
	cmd := command{run: fn, reply: make(chan error, 1)}
	select {
	case s.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Connect resolves a discovered service by name and connects: the control
// port when this TV is the one already paired, the pairing port otherwise.
func (s *Session) Connect(ctx context.Context, name string) error {
	return s.do(ctx, func(runCtx context.Context) error {
		if s.browser == nil {
			return errors.New("session: discovery unavailable")
		}
		s.stopLink()
		s.clearRetry()
		s.suspended = false
		s.publish(atvremote.StateConnecting, "", false, "")

		go func() {
			rctx, cancel := context.WithTimeout(runCtx, resolveTimeout)
			defer cancel()
			addr, err := s.browser.Resolve(rctx, name)
			select {
			case s.resolves <- resolved{name: name, addr: addr, err: err}:
			case <-runCtx.Done():
			}
		}()
		return nil
	})
}

// ConnectIP dials the control port of a known TV directly.
func (s *Session) ConnectIP(ctx context.Context, addr netip.Addr) error {
	return s.do(ctx, func(runCtx context.Context) error {
		s.stopLink()
		s.clearRetry()
		s.suspended = false
		s.publish(atvremote.StateConnecting, "", false, addr.String())
		s.start(runCtx, linkControl, addr)
		return nil
	})
}

// SubmitSecret hands the user-entered code to the running handshake.
func (s *Session) SubmitSecret(ctx context.Context, code string) error {
	if err := pairing.ValidateCode(code); err != nil {
		return err
	}
	return s.do(ctx, func(context.Context) error {
		if s.active == nil || s.active.kind != linkPairing {
			return ErrNotPairing
		}
		select {
		case s.active.codes <- code:
			return nil
		default:
			return errors.New("session: a code is already being verified")
		}
	})
}

// SendKey injects one logical key press into the active session.
func (s *Session) SendKey(ctx context.Context, key atvremote.Keycode) error {
	return s.do(ctx, func(context.Context) error {
		if s.active == nil || s.active.kind != linkControl {
			return ErrNotConnected
		}
		select {
		case s.active.keys <- key:
			return nil
		default:
			return errors.New("session: key queue full")
		}
	})
}

// Disconnect tears down the active connection.
func (s *Session) Disconnect(ctx context.Context) error {
	return s.do(ctx, func(context.Context) error {
		s.stopLink()
		s.clearRetry()
		s.publish(atvremote.StateDisconnected, "", false, "")
		return nil
	})
}

// Suspend cancels the transport ahead of system sleep.
func (s *Session) Suspend(ctx context.Context) error {
	return s.do(ctx, func(context.Context) error {
		s.suspended = true
		s.stopLink()
		s.clearRetry()
		s.publish(atvremote.StatePaused, "OS sleeping", false, "")
		return nil
	})
}

// Resume reconnects after wake, giving the network a moment to settle.
func (s *Session) Resume(ctx context.Context) error {
	return s.do(ctx, func(context.Context) error {
		if !s.suspended {
			return nil
		}
		s.suspended = false
		addr, ok, err := s.store.LastDevice()
		if err != nil || !ok {
			s.publish(atvremote.StateSearching, "", false, "")
			return nil
		}
		s.armRetry(addr, resumeSettleDelay)
		return nil
	})
}

// Devices lists the currently discovered TVs.
func (s *Session) Devices() []atvremote.Device {
	if s.browser == nil {
		return nil
	}
	return s.browser.Devices()
}

// Status returns the latest published snapshot.
func (s *Session) Status() atvremote.Status {
	return s.broker.Latest()
}

func (s *Session) onResolved(ctx context.Context, res resolved) {
	if res.err != nil {
		slog.Warn("resolution failed", "name", res.name, "err", res.err)
		s.publish(atvremote.StateError, fmt.Sprintf("could not resolve %q", res.name), false, "")
		return
	}

	s.stopLink()
	last, ok, _ := s.store.LastDevice()
	if ok && last == res.addr {
		// Already paired with this TV; the control port will accept us.
		s.start(ctx, linkControl, res.addr)
		return
	}
	s.start(ctx, linkPairing, res.addr)
}

func (s *Session) onResult(ctx context.Context, res result) {
	log := slog.With("component", "session")

	if res.link != s.active {
		// A link the supervisor already replaced or tore down; its
		// outcome was decided elsewhere.
		return
	}
	s.active = nil

	switch res.link.kind {
	case linkPairing:
		if res.err != nil {
			log.Warn("pairing failed", "addr", res.link.addr, "err", res.err)
			s.publish(atvremote.StateError, res.err.Error(), false, res.link.addr.String())
			return
		}
		// Pairing bound our certificate; reconnect on the control port
		// with a fresh transport.
		log.Info("pairing succeeded, switching to control port", "addr", res.link.addr)
		s.publish(atvremote.StateConnecting, "", false, res.link.addr.String())
		s.start(ctx, linkControl, res.link.addr)

	case linkControl:
		err := res.err
		if err == nil {
			err = errors.New("control session ended")
		}
		log.Warn("control session lost", "addr", res.link.addr, "err", err)
		s.publish(atvremote.StateError, err.Error(), false, res.link.addr.String())
		s.armRetry(res.link.addr, controlRetryDelay)
	}
}

// start dials addr on the port for kind and runs the matching machine. The
// blocking work happens on a separate goroutine; the supervisor learns the
// outcome through s.results.
func (s *Session) start(ctx context.Context, kind linkKind, addr netip.Addr) {
	s.stopLink()

	linkCtx, cancel := context.WithCancel(ctx)
	l := &link{
		kind:   kind,
		addr:   addr,
		cancel: cancel,
		codes:  make(chan string, codeQueueCap),
		keys:   make(chan atvremote.Keycode, keyQueueCap),
	}
	s.active = l

	go func() {
		err := s.runLink(linkCtx, l)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		select {
		case s.results <- result{link: l, err: err}:
		case <-linkCtx.Done():
			// Cancelled links were torn down by the supervisor itself;
			// nobody is waiting for this outcome.
		}
	}()
}

func (s *Session) runLink(ctx context.Context, l *link) error {
	port := s.controlPort
	if l.kind == linkPairing {
		port = s.pairingPort
	}

	conn, err := transport.Dial(ctx, l.addr, port, s.identity.Certificate)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	switch l.kind {
	case linkPairing:
		m, err := pairing.New(conn, s.identity.Leaf.Raw, s.clientName, s.serviceName, s.device)
		if err != nil {
			return err
		}
		m.OnCodeNeeded = func(retry bool) {
			msg := "enter the code shown on the TV"
			if retry {
				msg = "code rejected, try again"
			}
			s.publish(atvremote.StateConnecting, msg, true, l.addr.String())
		}
		return m.Run(ctx, l.codes)

	case linkControl:
		m := control.New(conn, s.device)
		m.OnConfigured = func() {
			if err := s.store.SetLastDevice(l.addr); err != nil {
				slog.Warn("persist last device", "err", err)
			}
			s.publish(atvremote.StateConnected, "", false, l.addr.String())
		}
		return m.Run(ctx, l.keys)
	}
	return fmt.Errorf("session: unknown link kind %v", l.kind)
}

func (s *Session) stopLink() {
	if s.active == nil {
		return
	}
	s.active.cancel()
	s.active = nil
}

func (s *Session) armRetry(addr netip.Addr, delay time.Duration) {
	s.clearRetry()
	s.retryAddr = addr
	s.retryTimer = time.NewTimer(delay)
	s.retryC = s.retryTimer.C
}

func (s *Session) clearRetry() {
	if s.retryTimer != nil {
		s.retryTimer.Stop()
		s.retryTimer = nil
		s.retryC = nil
	}
}

func (s *Session) publish(state atvremote.State, msg string, isPairing bool, device string) {
	s.broker.Publish(atvremote.Status{
		State:   state,
		Message: msg,
		Pairing: isPairing,
		Device:  device,
	})
}
