package polo

import (
	"fmt"

	"atvremote/internal/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// Control-port field numbers.
const (
	FieldConfigure    = 1
	FieldConfigureAck = 2
	FieldPingRequest  = 8
	FieldPingResponse = 9
	FieldKeyInject    = 10
)

// Key-inject directions.
const (
	DirectionPress   = 1
	DirectionRelease = 2
)

// Configure carries the code1 handle echoed between client and TV.
type Configure struct {
	Code1 uint64
}

// Ping is a ping request or response body.
type Ping struct {
	ID uint64
}

// Remote is a decoded control-port message. Exactly one of the pointers is
// set for the fields the client acts on; anything else lands in Unknown.
type Remote struct {
	Configure    *Configure
	ConfigureAck *Configure
	PingRequest  *Ping
	// Unknown is the first field number the client does not handle, kept
	// for logging. Zero when the message was fully understood.
	Unknown wire.Number
}

// EncodeConfigure builds the initial outbound configure message.
//
// RemoteConfigure { code1 = 1, device_info = 2 }
func EncodeConfigure(code1 uint64, d DeviceInfo) []byte {
	var body []byte
	body = wire.AppendTag(body, 1, wire.VarintType)
	body = wire.AppendVarint(body, code1)
	body = appendMessage(body, 2, appendDeviceInfo(nil, d))
	return appendMessage(nil, FieldConfigure, body)
}

// EncodeConfigureAck acknowledges the TV's configure, echoing its code1.
func EncodeConfigureAck(code1 uint64) []byte {
	body := wire.AppendTag(nil, 1, wire.VarintType)
	body = wire.AppendVarint(body, code1)
	return appendMessage(nil, FieldConfigureAck, body)
}

// EncodePingResponse answers a ping request with the same id.
//
// PingResponse { id = 1 }
func EncodePingResponse(id uint64) []byte {
	body := wire.AppendTag(nil, 1, wire.VarintType)
	body = wire.AppendVarint(body, id)
	return appendMessage(nil, FieldPingResponse, body)
}

// EncodeKeyInject builds one half of a key press.
//
// RemoteKeyInject { keycode = 1, direction = 2 }
func EncodeKeyInject(keycode int32, direction uint64) []byte {
	return appendMessage(nil, FieldKeyInject, KeyInjectBody(keycode, direction))
}

// KeyInjectBody is the inner RemoteKeyInject encoding.
func KeyInjectBody(keycode int32, direction uint64) []byte {
	body := wire.AppendTag(nil, 1, wire.VarintType)
	body = wire.AppendVarint(body, uint64(keycode))
	body = wire.AppendTag(body, 2, wire.VarintType)
	body = wire.AppendVarint(body, direction)
	return body
}

// DecodeRemote parses an inbound control-port message. Fields the client
// does not act on are skipped; the first such field number is recorded.
func DecodeRemote(b []byte) (Remote, error) {
	var msg Remote
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return msg, fmt.Errorf("%w: tag: %v", ErrDecode, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == FieldConfigure && typ == wire.BytesType:
			body, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return msg, fmt.Errorf("%w: configure: %v", ErrDecode, protowire.ParseError(n))
			}
			cfg, err := decodeConfigure(body)
			if err != nil {
				return msg, err
			}
			msg.Configure = &cfg
			b = b[n:]
		case num == FieldConfigureAck && typ == wire.BytesType:
			body, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return msg, fmt.Errorf("%w: configure_ack: %v", ErrDecode, protowire.ParseError(n))
			}
			cfg, err := decodeConfigure(body)
			if err != nil {
				return msg, err
			}
			msg.ConfigureAck = &cfg
			b = b[n:]
		case num == FieldPingRequest && typ == wire.BytesType:
			body, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return msg, fmt.Errorf("%w: ping_request: %v", ErrDecode, protowire.ParseError(n))
			}
			ping, err := decodePing(body)
			if err != nil {
				return msg, err
			}
			msg.PingRequest = &ping
			b = b[n:]
		default:
			if msg.Unknown == 0 {
				msg.Unknown = num
			}
			var err error
			b, err = skipField(b, num, typ)
			if err != nil {
				return msg, err
			}
		}
	}
	return msg, nil
}

func decodeConfigure(b []byte) (Configure, error) {
	var cfg Configure
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return cfg, fmt.Errorf("%w: configure tag: %v", ErrDecode, protowire.ParseError(n))
		}
		b = b[n:]

		if num == 1 && typ == wire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return cfg, fmt.Errorf("%w: code1: %v", ErrDecode, protowire.ParseError(n))
			}
			cfg.Code1 = v
			b = b[n:]
			continue
		}
		var err error
		b, err = skipField(b, num, typ)
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func decodePing(b []byte) (Ping, error) {
	var ping Ping
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ping, fmt.Errorf("%w: ping tag: %v", ErrDecode, protowire.ParseError(n))
		}
		b = b[n:]

		if num == 1 && typ == wire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return ping, fmt.Errorf("%w: ping id: %v", ErrDecode, protowire.ParseError(n))
			}
			ping.ID = v
			b = b[n:]
			continue
		}
		var err error
		b, err = skipField(b, num, typ)
		if err != nil {
			return ping, err
		}
	}
	return ping, nil
}
