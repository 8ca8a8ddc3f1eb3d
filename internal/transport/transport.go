// Package transport owns one TCP+TLS connection to the TV. The client
// certificate is presented for mutual auth; the server certificate is
// accepted regardless and its leaf captured, because the TV's cert is
// self-signed and unknown until pairing has completed. A background receive
// loop reassembles length-prefixed frames and hands them to the consumer.
package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"strconv"
	"sync"
	"time"

	"atvremote/internal/wire"
)

const (
	dialTimeout    = 5 * time.Second
	recvBufferSize = 8192
	frameQueueCap  = 32
)

// ErrClosed reports an operation on a connection after Close. It is the
// expected outcome of a deliberate disconnect, never a failure.
var ErrClosed = errors.New("transport: closed")

// Conn is a single TLS session to one of the TV's ports.
type Conn struct {
	tls    *tls.Conn
	leaf   []byte
	frames chan []byte
	quit   chan struct{}

	mu      sync.Mutex
	closed  bool
	readErr error
}

// Dial opens TCP to addr:port, completes the TLS handshake with the given
// client certificate, and starts the receive loop.
func Dial(ctx context.Context, addr netip.Addr, port int, cert tls.Certificate) (*Conn, error) {
	target := net.JoinHostPort(addr.String(), strconv.Itoa(port))

	d := net.Dialer{Timeout: dialTimeout}
	raw, err := d.DialContext(ctx, "tcp", target)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		// The TV's certificate is self-signed; trust is established by the
		// pairing handshake, not the chain. The leaf is captured below for
		// the secret digest.
		InsecureSkipVerify: true,
	}
	tc := tls.Client(raw, cfg)
	if err := tc.HandshakeContext(ctx); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("tls handshake %s: %w", target, err)
	}

	peers := tc.ConnectionState().PeerCertificates
	if len(peers) == 0 {
		_ = tc.Close()
		return nil, fmt.Errorf("tls handshake %s: server sent no certificate", target)
	}

	c := &Conn{
		tls:    tc,
		leaf:   append([]byte(nil), peers[0].Raw...),
		frames: make(chan []byte, frameQueueCap),
		quit:   make(chan struct{}),
	}
	go c.recvLoop()
	return c, nil
}

// ServerCertificate returns the DER bytes of the leaf the TV presented.
func (c *Conn) ServerCertificate() []byte { return c.leaf }

// Frames is the stream of inbound message payloads, in receive order. The
// channel closes when the connection ends; Err tells why.
func (c *Conn) Frames() <-chan []byte { return c.frames }

// Send frames payload and writes it out.
func (c *Conn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if _, err := c.tls.Write(wire.Frame(payload)); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// Close tears the connection down. Safe to call more than once and
// concurrently with Send.
func (c *Conn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.quit)
	c.mu.Unlock()

	return c.tls.Close()
}

// Err returns the terminal receive error: nil after a deliberate Close, and
// an error whenever the TV ends the connection, a clean shutdown included.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readErr
}

func (c *Conn) recvLoop() {
	defer close(c.frames)

	var r wire.Reassembler
	buf := make([]byte, recvBufferSize)

	for {
		n, err := c.tls.Read(buf)
		if n > 0 {
			r.Push(buf[:n])
			if ferr := c.drain(&r); ferr != nil {
				c.setReadErr(ferr)
				return
			}
		}
		if err != nil {
			c.setReadErr(err)
			return
		}
	}
}

func (c *Conn) drain(r *wire.Reassembler) error {
	for {
		frame, err := r.Next()
		if err != nil {
			// Desynchronized stream; nothing downstream can recover.
			return err
		}
		if frame == nil {
			return nil
		}
		select {
		case c.frames <- frame:
		case <-c.quit:
			return ErrClosed
		}
	}
}

func (c *Conn) setReadErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Reads failing after Close are the expected end of the session.
	if c.closed || errors.Is(err, ErrClosed) || errors.Is(err, net.ErrClosed) || errors.Is(err, context.Canceled) {
		return
	}
	if errors.Is(err, io.EOF) {
		c.readErr = errors.New("transport: connection closed by TV")
		return
	}
	c.readErr = err
}
