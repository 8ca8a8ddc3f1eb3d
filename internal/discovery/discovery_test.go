package discovery

import (
	"context"
	"net"
	"net/netip"
	"testing"
	"time"

	"atvremote"

	"github.com/brutella/dnssd"
)

func entry(name string, ips ...net.IP) dnssd.BrowseEntry {
	return dnssd.BrowseEntry{Name: name, Host: name + "-host", IPs: ips}
}

func TestAddPublishesDevice(t *testing.T) {
	var seen [][]atvremote.Device
	b := NewBrowser(func(devices []atvremote.Device) { seen = append(seen, devices) })
	b.allowed = nil

	b.add(entry("Living Room TV", net.IPv4(192, 0, 2, 40)))

	devices := b.Devices()
	if len(devices) != 1 {
		t.Fatalf("devices = %v, want one entry", devices)
	}
	want := netip.MustParseAddr("192.0.2.40")
	if devices[0].Addr != want || devices[0].Name != "Living Room TV" {
		t.Fatalf("device = %+v, want addr %v", devices[0], want)
	}
	if len(seen) != 1 {
		t.Fatalf("onChange fired %d times, want 1", len(seen))
	}
}

func TestAddWithoutIPv4Ignored(t *testing.T) {
	b := NewBrowser(nil)
	b.allowed = nil

	b.add(entry("v6 only", net.ParseIP("2001:db8::1")))

	if got := b.Devices(); len(got) != 0 {
		t.Fatalf("devices = %v, want none", got)
	}
}

func TestRemoveDropsDevice(t *testing.T) {
	b := NewBrowser(nil)
	b.allowed = nil

	b.add(entry("TV", net.IPv4(192, 0, 2, 41)))
	b.remove(entry("TV"))

	if got := b.Devices(); len(got) != 0 {
		t.Fatalf("devices = %v, want none after remove", got)
	}
}

func TestInterfaceFilter(t *testing.T) {
	b := NewBrowser(nil)
	b.allowed = map[string]bool{"eth0": true}

	filtered := entry("TV", net.IPv4(192, 0, 2, 42))
	filtered.IfaceName = "docker0"
	b.add(filtered)

	if got := b.Devices(); len(got) != 0 {
		t.Fatalf("devices = %v, want filtered-out entry dropped", got)
	}

	kept := entry("TV", net.IPv4(192, 0, 2, 42))
	kept.IfaceName = "eth0"
	b.add(kept)

	if got := b.Devices(); len(got) != 1 {
		t.Fatalf("devices = %v, want one entry", got)
	}
}

func TestResolveWaitsForDevice(t *testing.T) {
	b := NewBrowser(nil)
	b.allowed = nil

	go func() {
		time.Sleep(50 * time.Millisecond)
		b.add(entry("Late TV", net.IPv4(192, 0, 2, 43)))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	addr, err := b.Resolve(ctx, "Late TV")
	if err != nil {
		t.Fatal(err)
	}
	if addr != netip.MustParseAddr("192.0.2.43") {
		t.Fatalf("addr = %v", addr)
	}
}

func TestResolveTimesOut(t *testing.T) {
	b := NewBrowser(nil)
	b.allowed = nil

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := b.Resolve(ctx, "Ghost TV"); err == nil {
		t.Fatal("resolve of unknown service should time out")
	}
}
