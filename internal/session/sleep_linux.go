//go:build linux

package session

import (
	"context"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// watchSleep follows logind's PrepareForSleep signal and drives the
// suspend/resume policies. Running without a system bus (containers, CI)
// just disables the feature.
func (s *Session) watchSleep(ctx context.Context) {
	log := slog.With("component", "sleep-watcher")

	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		log.Debug("system bus unavailable", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.login1.Manager"),
		dbus.WithMatchMember("PrepareForSleep"),
	); err != nil {
		log.Debug("logind signal match failed", "err", err)
		return
	}

	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)
	log.Debug("watching logind for sleep transitions")

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			if len(sig.Body) != 1 {
				continue
			}
			sleeping, ok := sig.Body[0].(bool)
			if !ok {
				continue
			}
			if sleeping {
				log.Info("system going to sleep")
				_ = s.Suspend(ctx)
			} else {
				log.Info("system woke up")
				_ = s.Resume(ctx)
			}
		}
	}
}
