package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"time"

	"atvremote"
	"atvremote/daemon/pb"
	"atvremote/internal/buildinfo"
	"atvremote/internal/session"
	"atvremote/internal/signal/ntp"
	"atvremote/internal/watch"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// apiTimeout bounds the supervisor round-trip of a unary call.
const apiTimeout = 10 * time.Second

// Server exposes the session over gRPC on a unix socket.
type Server struct {
	pb.UnimplementedRemoteServer
	session *session.Session
	broker  *watch.Broker
	clock   *ntp.Checker
	ready   chan struct{}
}

func NewServer(sess *session.Session, broker *watch.Broker, clock *ntp.Checker) *Server {
	return &Server{session: sess, broker: broker, clock: clock, ready: make(chan struct{})}
}

// Ready is closed once the socket is listening.
func (s *Server) Ready() <-chan struct{} { return s.ready }

func (s *Server) GetStatus(_ context.Context, _ *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	return s.statusResponse(s.session.Status()), nil
}

func (s *Server) WatchStatus(_ *pb.WatchStatusRequest, stream grpc.ServerStreamingServer[pb.GetStatusResponse]) error {
	ctx := stream.Context()
	snapshot, changes := s.broker.Subscribe(ctx)

	if err := stream.Send(s.statusResponse(snapshot)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-changes:
			if !ok {
				return nil
			}
			if err := stream.Send(s.statusResponse(st)); err != nil {
				return err
			}
		}
	}
}

func (s *Server) ListDevices(_ context.Context, _ *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {
	devices := s.session.Devices()
	resp := &pb.ListDevicesResponse{Devices: make([]*pb.Device, 0, len(devices))}
	for _, d := range devices {
		resp.Devices = append(resp.Devices, &pb.Device{
			Name: d.Name,
			Host: d.Host,
			Ip:   d.Addr.String(),
		})
	}
	return resp, nil
}

func (s *Server) Connect(ctx context.Context, req *pb.ConnectRequest) (*pb.ConnectResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	switch {
	case req.GetIp() != "":
		addr, err := netip.ParseAddr(req.GetIp())
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "bad ip %q: %v", req.GetIp(), err)
		}
		if err := s.session.ConnectIP(ctx, addr); err != nil {
			return nil, toStatus(err)
		}
	case req.GetName() != "":
		if err := s.session.Connect(ctx, req.GetName()); err != nil {
			return nil, toStatus(err)
		}
	default:
		return nil, status.Error(codes.InvalidArgument, "either name or ip is required")
	}
	return &pb.ConnectResponse{}, nil
}

func (s *Server) Disconnect(ctx context.Context, _ *pb.DisconnectRequest) (*pb.DisconnectResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	if err := s.session.Disconnect(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DisconnectResponse{}, nil
}

func (s *Server) SubmitSecret(ctx context.Context, req *pb.SubmitSecretRequest) (*pb.SubmitSecretResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	if err := s.session.SubmitSecret(ctx, req.GetCode()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmitSecretResponse{}, nil
}

func (s *Server) SendKey(ctx context.Context, req *pb.SendKeyRequest) (*pb.SendKeyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	if err := s.session.SendKey(ctx, atvremote.Keycode(req.GetKeycode())); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SendKeyResponse{}, nil
}

// ListenAndServe serves the API on a unix socket until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, socketPath string) error {
	ln, err := listenUnix(socketPath)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(socketPath) }()

	srv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	pb.RegisterRemoteServer(srv, s)
	close(s.ready)

	// Shut down when ctx is cancelled.
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func listenUnix(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}
	// Remove a stale socket from a previous run (may not exist).
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}

	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen unix %s: %w", socketPath, err)
	}
	if err := os.Chmod(socketPath, 0o600); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("set socket permissions: %w", err)
	}
	return ln, nil
}

func (s *Server) statusResponse(st atvremote.Status) *pb.GetStatusResponse {
	resp := &pb.GetStatusResponse{
		State:   st.State.String(),
		Message: st.Message,
		Pairing: st.Pairing,
		Device:  st.Device,
		Version: buildinfo.Version,
	}
	if s.clock != nil {
		resp.Clock = s.clock.Status().Phase.String()
	}
	return resp
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, session.ErrNotPairing), errors.Is(err, session.ErrNotConnected):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
