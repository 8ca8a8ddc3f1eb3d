package store

import (
	"net/netip"
	"path/filepath"
	"testing"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLastDeviceEmpty(t *testing.T) {
	s := open(t)

	_, ok, err := s.LastDevice()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("fresh store reports a last device")
	}
}

func TestLastDeviceRoundTrip(t *testing.T) {
	s := open(t)
	want := netip.MustParseAddr("192.0.2.17")

	if err := s.SetLastDevice(want); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.LastDevice()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != want {
		t.Fatalf("LastDevice = (%v, %v), want (%v, true)", got, ok, want)
	}
}

func TestLastDeviceOverwrite(t *testing.T) {
	s := open(t)

	if err := s.SetLastDevice(netip.MustParseAddr("192.0.2.1")); err != nil {
		t.Fatal(err)
	}
	want := netip.MustParseAddr("192.0.2.2")
	if err := s.SetLastDevice(want); err != nil {
		t.Fatal(err)
	}

	got, ok, _ := s.LastDevice()
	if !ok || got != want {
		t.Fatalf("LastDevice = (%v, %v), want (%v, true)", got, ok, want)
	}
}

func TestForgetLastDevice(t *testing.T) {
	s := open(t)

	if err := s.SetLastDevice(netip.MustParseAddr("192.0.2.1")); err != nil {
		t.Fatal(err)
	}
	if err := s.ForgetLastDevice(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.LastDevice(); ok {
		t.Fatal("device survived ForgetLastDevice")
	}
}
