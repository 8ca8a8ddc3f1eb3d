// Package discovery browses the local network for Android TV remote
// endpoints over mDNS/DNS-SD and resolves service instances to IPv4
// addresses.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"sort"
	"sync"
	"time"

	"atvremote"

	"github.com/brutella/dnssd"
)

// ServiceType is the DNS-SD service advertised by Android TV devices that
// speak the v2 remote protocol.
const ServiceType = "_androidtvremote2._tcp.local."

const resolvePollInterval = 250 * time.Millisecond

// Browser maintains the set of currently visible TVs. Zero results for any
// length of time is a normal state, not an error.
type Browser struct {
	mu      sync.Mutex
	devices map[string]atvremote.Device

	allowed  map[string]bool // interfaces worth browsing; nil means all
	onChange func([]atvremote.Device)
}

// NewBrowser returns a Browser. onChange, if non-nil, is invoked with the
// full device set after every add or remove.
func NewBrowser(onChange func([]atvremote.Device)) *Browser {
	b := &Browser{
		devices:  make(map[string]atvremote.Device),
		onChange: onChange,
	}
	if ifaces := multicastInterfaces(); len(ifaces) > 0 {
		b.allowed = make(map[string]bool, len(ifaces))
		for _, name := range ifaces {
			b.allowed[name] = true
		}
	}
	return b
}

// Run browses until ctx is done. Cancellation is a clean exit.
func (b *Browser) Run(ctx context.Context) error {
	log := slog.With("component", "discovery")
	log.Debug("browsing", "service", ServiceType)

	err := dnssd.LookupType(ctx, ServiceType, b.add, b.remove)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("browse %s: %w", ServiceType, err)
	}
	return nil
}

// Devices returns the current set, sorted by service name.
func (b *Browser) Devices() []atvremote.Device {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Resolve waits until the named service instance has an IPv4 address,
// bounded by ctx. The caller applies the resolution timeout.
func (b *Browser) Resolve(ctx context.Context, name string) (netip.Addr, error) {
	ticker := time.NewTicker(resolvePollInterval)
	defer ticker.Stop()

	for {
		b.mu.Lock()
		dev, ok := b.devices[name]
		b.mu.Unlock()
		if ok && dev.Addr.IsValid() {
			return dev.Addr, nil
		}

		select {
		case <-ctx.Done():
			return netip.Addr{}, fmt.Errorf("resolve %q: %w", name, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (b *Browser) add(e dnssd.BrowseEntry) {
	if b.skip(e) {
		return
	}
	addr, ok := ipv4Of(e)
	if !ok {
		slog.Debug("service without IPv4 ignored", "name", e.Name)
		return
	}

	b.mu.Lock()
	b.devices[e.Name] = atvremote.Device{Name: e.Name, Host: e.Host, Addr: addr}
	snapshot := b.snapshotLocked()
	b.mu.Unlock()

	slog.Info("TV discovered", "name", e.Name, "addr", addr)
	b.notify(snapshot)
}

func (b *Browser) remove(e dnssd.BrowseEntry) {
	b.mu.Lock()
	_, known := b.devices[e.Name]
	delete(b.devices, e.Name)
	snapshot := b.snapshotLocked()
	b.mu.Unlock()

	if known {
		slog.Info("TV gone", "name", e.Name)
		b.notify(snapshot)
	}
}

func (b *Browser) skip(e dnssd.BrowseEntry) bool {
	return b.allowed != nil && e.IfaceName != "" && !b.allowed[e.IfaceName]
}

func (b *Browser) snapshotLocked() []atvremote.Device {
	out := make([]atvremote.Device, 0, len(b.devices))
	for _, d := range b.devices {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (b *Browser) notify(devices []atvremote.Device) {
	if b.onChange != nil {
		b.onChange(devices)
	}
}

func ipv4Of(e dnssd.BrowseEntry) (netip.Addr, bool) {
	for _, ip := range e.IPs {
		if v4 := ip.To4(); v4 != nil {
			addr, ok := netip.AddrFromSlice(v4)
			if ok {
				return addr, true
			}
		}
	}
	return netip.Addr{}, false
}
