// Package sdk provides a Go client for the atvremoted daemon. The CLI and
// external tools use this to drive the TV session.
package sdk

import (
	"context"
	"fmt"
	"net/netip"

	"atvremote"
	"atvremote/daemon/pb"

	"google.golang.org/grpc"
)

// Client wraps a gRPC connection to the daemon.
type Client struct {
	conn   *grpc.ClientConn
	remote pb.RemoteClient
}

// Dial connects to the daemon at the given unix socket path.
func Dial(ctx context.Context, socketPath string) (*Client, error) {
	conn, err := dialUnix(ctx, socketPath)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, remote: pb.NewRemoteClient(conn)}, nil
}

// Status returns the daemon's connection snapshot.
func (c *Client) Status(ctx context.Context) (*pb.GetStatusResponse, error) {
	resp, err := c.remote.GetStatus(ctx, &pb.GetStatusRequest{})
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	return resp, nil
}

// WatchStatus streams connection snapshots, starting with the current one.
func (c *Client) WatchStatus(ctx context.Context) (grpc.ServerStreamingClient[pb.GetStatusResponse], error) {
	stream, err := c.remote.WatchStatus(ctx, &pb.WatchStatusRequest{})
	if err != nil {
		return nil, fmt.Errorf("watch status: %w", err)
	}
	return stream, nil
}

// Devices lists the TVs currently visible over mDNS.
func (c *Client) Devices(ctx context.Context) ([]atvremote.Device, error) {
	resp, err := c.remote.ListDevices(ctx, &pb.ListDevicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	out := make([]atvremote.Device, 0, len(resp.GetDevices()))
	for _, d := range resp.GetDevices() {
		addr, err := netip.ParseAddr(d.GetIp())
		if err != nil {
			continue
		}
		out = append(out, atvremote.Device{Name: d.GetName(), Host: d.GetHost(), Addr: addr})
	}
	return out, nil
}

// Connect targets a discovered service by name; pairing starts
// automatically when this TV is not the one already bound.
func (c *Client) Connect(ctx context.Context, name string) error {
	if _, err := c.remote.Connect(ctx, &pb.ConnectRequest{Name: name}); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

// ConnectIP targets a TV's control port directly.
func (c *Client) ConnectIP(ctx context.Context, addr netip.Addr) error {
	if _, err := c.remote.Connect(ctx, &pb.ConnectRequest{Ip: addr.String()}); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

// Disconnect tears down the daemon's TV connection.
func (c *Client) Disconnect(ctx context.Context) error {
	if _, err := c.remote.Disconnect(ctx, &pb.DisconnectRequest{}); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}

// SubmitSecret sends the six-hex pairing code shown on the TV.
func (c *Client) SubmitSecret(ctx context.Context, code string) error {
	if _, err := c.remote.SubmitSecret(ctx, &pb.SubmitSecretRequest{Code: code}); err != nil {
		return fmt.Errorf("submit secret: %w", err)
	}
	return nil
}

// SendKey injects one key press.
func (c *Client) SendKey(ctx context.Context, key atvremote.Keycode) error {
	if _, err := c.remote.SendKey(ctx, &pb.SendKeyRequest{Keycode: int32(key)}); err != nil {
		return fmt.Errorf("send key: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
