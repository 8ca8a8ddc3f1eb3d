// Package polo models the two top-level Polo v2 messages: the pairing-port
// message exchanged during the code handshake and the control-port message
// carrying configure, ping, and key-inject payloads. Encoding is hand-rolled
// on the wire package because the field numbers are fixed by the protocol
// and unknown inbound fields must be skipped, not rejected.
package polo

import (
	"errors"
	"fmt"

	"atvremote/internal/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// Pairing-port status codes.
const (
	StatusOK        = 200
	StatusBadSecret = 402
)

// ErrDecode reports an inbound message that cannot be parsed.
var ErrDecode = errors.New("polo: decode")

// DeviceInfo identifies the client to the TV. Sent inside the pairing
// request and the control-port configure message.
type DeviceInfo struct {
	Model       string
	Vendor      string
	Unknown1    uint64
	Version     string
	PackageName string
	AppVersion  string
}

func appendDeviceInfo(b []byte, d DeviceInfo) []byte {
	var body []byte
	body = appendString(body, 1, d.Model)
	body = appendString(body, 2, d.Vendor)
	body = wire.AppendTag(body, 3, wire.VarintType)
	body = wire.AppendVarint(body, d.Unknown1)
	body = appendString(body, 4, d.Version)
	body = appendString(body, 5, d.PackageName)
	body = appendString(body, 6, d.AppVersion)
	return append(b, body...)
}

func appendString(b []byte, num wire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = wire.AppendTag(b, num, wire.BytesType)
	return protowire.AppendString(b, s)
}

func appendMessage(b []byte, num wire.Number, body []byte) []byte {
	b = wire.AppendTag(b, num, wire.BytesType)
	return protowire.AppendBytes(b, body)
}

// skipField consumes one field value after its tag has been read, returning
// the remaining bytes.
func skipField(b []byte, num protowire.Number, typ protowire.Type) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return nil, fmt.Errorf("%w: field %d: %v", ErrDecode, num, protowire.ParseError(n))
	}
	return b[n:], nil
}
