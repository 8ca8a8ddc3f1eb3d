// Package daemon wires the session supervisor, discovery, and the gRPC API
// into the long-running atvremoted process.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"atvremote/internal/discovery"
	"atvremote/internal/identity"
	"atvremote/internal/polo"
	"atvremote/internal/session"
	"atvremote/internal/signal/ntp"
	"atvremote/internal/store"
	"atvremote/internal/watch"

	systemd "github.com/coreos/go-systemd/daemon"
	"golang.org/x/sync/errgroup"
)

// Options configures a daemon run.
type Options struct {
	DataDir    string
	SocketPath string
	ClientName string
}

// Run starts discovery, the session supervisor, the clock checker, and the
// gRPC server, then blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	id, err := identity.LoadOrCreate(opts.DataDir)
	if err != nil {
		return fmt.Errorf("load identity: %w", err)
	}
	slog.Info("Identity loaded.", "cn", id.Leaf.Subject.CommonName)

	st, err := store.Open(filepath.Join(opts.DataDir, "prefs.db"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	broker := watch.NewBroker()
	browser := discovery.NewBrowser(nil)
	clock := ntp.NewChecker()

	sess := session.New(session.Config{
		Identity:    id,
		Store:       st,
		Broker:      broker,
		Browser:     browser,
		ClientName:  opts.ClientName,
		ServiceName: opts.ClientName,
		Device: polo.DeviceInfo{
			Model:       opts.ClientName,
			Vendor:      "atvremote",
			Unknown1:    1,
			Version:     "1",
			PackageName: "atvremote",
			AppVersion:  "1.0",
		},
	})

	srv := NewServer(sess, broker, clock)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return browser.Run(ctx) })
	g.Go(func() error {
		clock.Run(ctx)
		return nil
	})
	g.Go(func() error {
		slog.Info("Starting session supervisor.")

		// Tell systemd the daemon is up once the API socket exists.
		go func() {
			select {
			case <-srv.Ready():
				if _, err := systemd.SdNotify(false, systemd.SdNotifyReady); err != nil {
					slog.Error("Failed to notify systemd readiness.", "err", err)
				}
			case <-ctx.Done():
			}
		}()

		err := sess.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error { return srv.ListenAndServe(ctx, opts.SocketPath) })
	return g.Wait()
}
