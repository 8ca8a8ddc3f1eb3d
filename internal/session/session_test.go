package session

import (
	"context"
	"crypto/tls"
	"net"
	"net/netip"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"atvremote"
	"atvremote/internal/identity"
	"atvremote/internal/polo"
	"atvremote/internal/store"
	"atvremote/internal/watch"
	"atvremote/internal/wire"
)

// fakeTV accepts control-port connections and acknowledges the configure.
type fakeTV struct {
	ln     net.Listener
	frames chan []byte

	mu    sync.Mutex
	conns []net.Conn
}

func newFakeTV(t *testing.T) *fakeTV {
	t.Helper()

	id, err := identity.LoadOrCreate(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{id.Certificate},
		ClientAuth:   tls.RequireAnyClientCert,
	})
	if err != nil {
		t.Fatal(err)
	}

	tv := &fakeTV{ln: ln, frames: make(chan []byte, 32)}
	go tv.serve()
	t.Cleanup(func() { _ = ln.Close() })
	return tv
}

func (tv *fakeTV) serve() {
	for {
		conn, err := tv.ln.Accept()
		if err != nil {
			return
		}
		tv.mu.Lock()
		tv.conns = append(tv.conns, conn)
		tv.mu.Unlock()
		go tv.handle(conn)
	}
}

func (tv *fakeTV) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	var r wire.Reassembler
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			r.Push(buf[:n])
			for {
				frame, ferr := r.Next()
				if ferr != nil || frame == nil {
					break
				}
				tv.frames <- frame
				msg, derr := polo.DecodeRemote(frame)
				if derr == nil && msg.Configure != nil {
					_, _ = conn.Write(wire.Frame(polo.EncodeConfigureAck(msg.Configure.Code1)))
				}
			}
		}
		if err != nil {
			return
		}
	}
}

func (tv *fakeTV) dropConnections() {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	for _, c := range tv.conns {
		_ = c.Close()
	}
	tv.conns = nil
}

func (tv *fakeTV) addrPort(t *testing.T) (netip.Addr, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(tv.ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	port, _ := strconv.Atoi(portStr)
	return netip.MustParseAddr(host), port
}

func (tv *fakeTV) nextFrame(t *testing.T) []byte {
	t.Helper()
	select {
	case f := <-tv.frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("TV received nothing")
		return nil
	}
}

func newTestSession(t *testing.T, controlPort int) (*Session, *watch.Broker, context.CancelFunc) {
	t.Helper()

	id, err := identity.LoadOrCreate(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	broker := watch.NewBroker()
	s := New(Config{
		Identity:   id,
		Store:      st,
		Broker:     broker,
		ClientName: "test-client",
		Device:     polo.DeviceInfo{Model: "test"},
	})
	if controlPort != 0 {
		s.controlPort = controlPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = s.Run(ctx) }()
	t.Cleanup(cancel)
	return s, broker, cancel
}

func waitState(t *testing.T, broker *watch.Broker, want atvremote.State) atvremote.Status {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	snap, ch := broker.Subscribe(ctx)
	if snap.State == want {
		return snap
	}
	for {
		select {
		case st, ok := <-ch:
			if !ok {
				t.Fatalf("state %v never published (last %v)", want, snap)
			}
			snap = st
			if st.State == want {
				return st
			}
		case <-ctx.Done():
			t.Fatalf("state %v never published (last %v)", want, snap)
		}
	}
}

func TestBootstrapWithoutLastDeviceSearches(t *testing.T) {
	_, broker, _ := newTestSession(t, 0)
	waitState(t, broker, atvremote.StateSearching)
}

func TestConnectIPEstablishesControlSession(t *testing.T) {
	tv := newFakeTV(t)
	addr, port := tv.addrPort(t)
	s, broker, _ := newTestSession(t, port)

	if err := s.ConnectIP(context.Background(), addr); err != nil {
		t.Fatal(err)
	}

	// First frame at the TV is the client's configure.
	msg, err := polo.DecodeRemote(tv.nextFrame(t))
	if err != nil {
		t.Fatal(err)
	}
	if msg.Configure == nil {
		t.Fatalf("first frame = %+v, want configure", msg)
	}

	st := waitState(t, broker, atvremote.StateConnected)
	if st.Device != addr.String() {
		t.Fatalf("connected device = %q, want %q", st.Device, addr)
	}

	// A completed configuration persists the last device.
	got, ok, err := s.store.LastDevice()
	if err != nil || !ok || got != addr {
		t.Fatalf("LastDevice = (%v, %v, %v), want %v", got, ok, err, addr)
	}
}

func TestSendKeyReachesTV(t *testing.T) {
	tv := newFakeTV(t)
	addr, port := tv.addrPort(t)
	s, broker, _ := newTestSession(t, port)

	if err := s.ConnectIP(context.Background(), addr); err != nil {
		t.Fatal(err)
	}
	tv.nextFrame(t) // configure
	waitState(t, broker, atvremote.StateConnected)

	if err := s.SendKey(context.Background(), atvremote.KeyDpadUp); err != nil {
		t.Fatal(err)
	}

	press := tv.nextFrame(t)
	if press[0] != 0x52 {
		t.Fatalf("press frame = %x, want key inject", press)
	}
	release := tv.nextFrame(t)
	if release[0] != 0x52 {
		t.Fatalf("release frame = %x, want key inject", release)
	}
}

func TestSendKeyWithoutConnection(t *testing.T) {
	s, broker, _ := newTestSession(t, 0)
	waitState(t, broker, atvremote.StateSearching)

	if err := s.SendKey(context.Background(), atvremote.KeyHome); err != ErrNotConnected {
		t.Fatalf("SendKey = %v, want ErrNotConnected", err)
	}
}

func TestSubmitSecretWithoutPairing(t *testing.T) {
	s, broker, _ := newTestSession(t, 0)
	waitState(t, broker, atvremote.StateSearching)

	if err := s.SubmitSecret(context.Background(), "a1b2c3"); err != ErrNotPairing {
		t.Fatalf("SubmitSecret = %v, want ErrNotPairing", err)
	}
}

func TestSubmitSecretValidatesCode(t *testing.T) {
	s, broker, _ := newTestSession(t, 0)
	waitState(t, broker, atvremote.StateSearching)

	if err := s.SubmitSecret(context.Background(), "nope"); err == nil {
		t.Fatal("malformed code accepted")
	}
}

func TestDisconnect(t *testing.T) {
	tv := newFakeTV(t)
	addr, port := tv.addrPort(t)
	s, broker, _ := newTestSession(t, port)

	if err := s.ConnectIP(context.Background(), addr); err != nil {
		t.Fatal(err)
	}
	waitState(t, broker, atvremote.StateConnected)

	if err := s.Disconnect(context.Background()); err != nil {
		t.Fatal(err)
	}
	waitState(t, broker, atvremote.StateDisconnected)

	if err := s.SendKey(context.Background(), atvremote.KeyHome); err != ErrNotConnected {
		t.Fatalf("SendKey after disconnect = %v, want ErrNotConnected", err)
	}
}

func TestControlLossSurfacesErrorAndRetries(t *testing.T) {
	tv := newFakeTV(t)
	addr, port := tv.addrPort(t)
	s, broker, _ := newTestSession(t, port)

	if err := s.ConnectIP(context.Background(), addr); err != nil {
		t.Fatal(err)
	}
	waitState(t, broker, atvremote.StateConnected)

	// Kill the TV side; the session must surface an error, wait, and
	// reconnect to the same address on the control port.
	tv.dropConnections()
	waitState(t, broker, atvremote.StateError)
	waitState(t, broker, atvremote.StateConnected)
}

func TestSuspendPublishesPaused(t *testing.T) {
	tv := newFakeTV(t)
	addr, port := tv.addrPort(t)
	s, broker, _ := newTestSession(t, port)

	if err := s.ConnectIP(context.Background(), addr); err != nil {
		t.Fatal(err)
	}
	waitState(t, broker, atvremote.StateConnected)

	if err := s.Suspend(context.Background()); err != nil {
		t.Fatal(err)
	}
	st := waitState(t, broker, atvremote.StatePaused)
	if st.Message != "OS sleeping" {
		t.Fatalf("paused message = %q", st.Message)
	}
}
