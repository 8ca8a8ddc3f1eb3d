// Package atvremote holds the domain types shared by the daemon, the SDK,
// and the CLI: the published connection state, discovered devices, and the
// Android keycode table.
package atvremote

import "net/netip"

// Well-known Android TV remote protocol ports.
const (
	PairingPort = 6467
	ControlPort = 6466
)

// State is the coarse connection state published to observers.
type State uint8

const (
	StateDisconnected State = iota
	StateSearching
	StateConnecting
	StateConnected
	StatePaused
	StateError
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateSearching:
		return "searching"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StatePaused:
		return "paused"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the latest connection snapshot. Message carries detail for the
// error and paused states; Pairing means the UI must collect a code.
type Status struct {
	State   State
	Message string
	Pairing bool
	Device  string // IPv4 of the active or last attempted TV, if any
}

// Device is a TV discovered over mDNS, resolved to an IPv4 address.
type Device struct {
	Name string // mDNS service instance name
	Host string // advertised hostname
	Addr netip.Addr
}

// Endpoint is a connect target: a resolved address plus the service name it
// came from (empty when the user dialed an IP directly).
type Endpoint struct {
	Addr netip.Addr
	Name string
}
