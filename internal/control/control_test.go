package control

import (
	"bytes"
	"context"
	"testing"
	"time"

	"atvremote"
	"atvremote/internal/polo"
	"atvremote/internal/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

type fakeTransport struct {
	sends  chan []byte
	frames chan []byte
	err    error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{sends: make(chan []byte, 16), frames: make(chan []byte, 16)}
}

func (f *fakeTransport) Send(payload []byte) error {
	f.sends <- payload
	return nil
}
func (f *fakeTransport) Frames() <-chan []byte { return f.frames }
func (f *fakeTransport) Err() error            { return f.err }

func (f *fakeTransport) nextSend(t *testing.T) []byte {
	t.Helper()
	select {
	case payload := <-f.sends:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("client sent nothing")
		return nil
	}
}

func pingRequest(id uint64) []byte {
	body := wire.AppendTag(nil, 1, wire.VarintType)
	body = wire.AppendVarint(body, id)
	msg := wire.AppendTag(nil, polo.FieldPingRequest, wire.BytesType)
	return protowire.AppendBytes(msg, body)
}

func start(t *testing.T) (*fakeTransport, *Machine, chan atvremote.Keycode, chan error, context.CancelFunc) {
	t.Helper()

	tr := newFakeTransport()
	m := New(tr, polo.DeviceInfo{Model: "m"})
	keys := make(chan atvremote.Keycode, 4)
	done := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { done <- m.Run(ctx, keys) }()
	t.Cleanup(cancel)

	// The initial configure always goes out first.
	first, err := polo.DecodeRemote(tr.nextSend(t))
	if err != nil {
		t.Fatal(err)
	}
	if first.Configure == nil || first.Configure.Code1 != defaultCode1 {
		t.Fatalf("initial message = %+v, want configure with code1 %d", first, defaultCode1)
	}
	return tr, m, keys, done, cancel
}

func TestConfigureAckEstablishesSession(t *testing.T) {
	tr, m, _, _, _ := start(t)

	configured := make(chan struct{}, 1)
	m.OnConfigured = func() { configured <- struct{}{} }

	tr.frames <- polo.EncodeConfigureAck(defaultCode1)

	select {
	case <-configured:
	case <-time.After(2 * time.Second):
		t.Fatal("configure ack did not establish the session")
	}
	if m.Phase() != PhaseConfigured {
		t.Fatalf("phase = %v, want configured", m.Phase())
	}
}

func TestInboundConfigureIsAcked(t *testing.T) {
	tr, m, _, _, _ := start(t)

	configured := make(chan struct{}, 1)
	m.OnConfigured = func() { configured <- struct{}{} }

	tr.frames <- polo.EncodeConfigure(911, polo.DeviceInfo{Model: "tv"})

	reply, err := polo.DecodeRemote(tr.nextSend(t))
	if err != nil {
		t.Fatal(err)
	}
	if reply.ConfigureAck == nil || reply.ConfigureAck.Code1 != 911 {
		t.Fatalf("reply = %+v, want configure_ack echoing 911", reply)
	}
	<-configured
}

func TestPingEcho(t *testing.T) {
	tr, _, _, _, _ := start(t)

	tr.frames <- pingRequest(42)

	reply := tr.nextSend(t)
	if reply[0] != 0x4A {
		t.Fatalf("reply tag = %#x, want ping response 0x4a", reply[0])
	}
	body, n := protowire.ConsumeBytes(reply[1:])
	if n < 0 {
		t.Fatal("ping response body does not decode")
	}
	id, vn := protowire.ConsumeVarint(body[1:])
	if vn < 0 || body[0] != 0x08 || id != 42 {
		t.Fatalf("ping response = %x, want id 42", reply)
	}
}

func TestKeyInjectPressThenRelease(t *testing.T) {
	tr, _, keys, _, _ := start(t)

	keys <- atvremote.KeyDpadCenter

	press := tr.nextSend(t)
	if !bytes.Equal(press, []byte{0x52, 0x04, 0x08, 0x17, 0x10, 0x01}) {
		t.Fatalf("press = %x", press)
	}
	release := tr.nextSend(t)
	if !bytes.Equal(release, []byte{0x52, 0x04, 0x08, 0x17, 0x10, 0x02}) {
		t.Fatalf("release = %x", release)
	}
}

func TestUnknownFieldIgnored(t *testing.T) {
	tr, _, _, done, _ := start(t)

	// Field 5 is not something the client acts on.
	msg := wire.AppendTag(nil, 5, wire.VarintType)
	msg = wire.AppendVarint(msg, 1)
	tr.frames <- msg
	tr.frames <- pingRequest(7)

	// The session must still be serving: the ping is answered.
	reply := tr.nextSend(t)
	if reply[0] != 0x4A {
		t.Fatalf("reply tag = %#x, want ping response", reply[0])
	}

	select {
	case err := <-done:
		t.Fatalf("session ended unexpectedly: %v", err)
	default:
	}
}

func TestCancelEndsSession(t *testing.T) {
	_, _, _, done, cancel := start(t)

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
