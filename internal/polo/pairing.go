package polo

import (
	"fmt"

	"atvremote/internal/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// Pairing-port field numbers. The gaps are part of the protocol.
const (
	fieldProtocolVersion = 1
	fieldStatus          = 2
	FieldPairingRequest  = 10
	FieldOptions         = 20
	FieldConfiguration   = 30
	FieldSecret          = 40
)

const protocolVersion = 2

// Pairing is a decoded pairing-port message, reduced to what the client
// acts on: the mandatory version/status prefix and the first step field
// that follows it, which identifies the handshake step the TV has reached.
type Pairing struct {
	ProtocolVersion uint64
	Status          uint64
	// Next is the first field number of 10 or above after the prefix (the
	// step fields are 10, 20, 30 and 40); extra lower-numbered fields are
	// skipped. 0 when the message carries no such field.
	Next wire.Number
}

// pairingPrefix starts every outbound pairing message: version 2, status 200.
func pairingPrefix() []byte {
	b := wire.AppendTag(nil, fieldProtocolVersion, wire.VarintType)
	b = wire.AppendVarint(b, protocolVersion)
	b = wire.AppendTag(b, fieldStatus, wire.VarintType)
	b = wire.AppendVarint(b, StatusOK)
	return b
}

// EncodePairingRequest builds the step-1 message.
//
// PairingRequest { client_name = 1, service_name = 2, device_info = 3 }
func EncodePairingRequest(clientName, serviceName string, d DeviceInfo) []byte {
	var body []byte
	body = appendString(body, 1, clientName)
	body = appendString(body, 2, serviceName)
	body = appendMessage(body, 3, appendDeviceInfo(nil, d))
	return appendMessage(pairingPrefix(), FieldPairingRequest, body)
}

// EncodeOptions builds the step-2 message. The client advertises a single
// hexadecimal six-symbol encoding and asks to take the input role.
//
// Options { input_encodings = 1, output_encodings = 2, preferred_role = 3 }
// Encoding { type = 1, symbol_length = 2 }
func EncodeOptions() []byte {
	enc := wire.AppendTag(nil, 1, wire.VarintType)
	enc = wire.AppendVarint(enc, 3) // ENCODING_TYPE_HEXADECIMAL
	enc = wire.AppendTag(enc, 2, wire.VarintType)
	enc = wire.AppendVarint(enc, 6)

	var body []byte
	body = appendMessage(body, 1, enc)
	body = wire.AppendTag(body, 3, wire.VarintType)
	body = wire.AppendVarint(body, 1) // ROLE_TYPE_INPUT
	return appendMessage(pairingPrefix(), FieldOptions, body)
}

// EncodeConfiguration builds the step-3 message, committing to the encoding
// advertised in Options.
//
// Configuration { encoding = 1, client_role = 2 }
func EncodeConfiguration() []byte {
	enc := wire.AppendTag(nil, 1, wire.VarintType)
	enc = wire.AppendVarint(enc, 3)
	enc = wire.AppendTag(enc, 2, wire.VarintType)
	enc = wire.AppendVarint(enc, 6)

	var body []byte
	body = appendMessage(body, 1, enc)
	body = wire.AppendTag(body, 2, wire.VarintType)
	body = wire.AppendVarint(body, 1)
	return appendMessage(pairingPrefix(), FieldConfiguration, body)
}

// EncodeSecret builds the step-4 message carrying the pairing digest.
//
// PairingSecret { secret = 1 }
func EncodeSecret(secret []byte) []byte {
	body := wire.AppendTag(nil, 1, wire.BytesType)
	body = protowire.AppendBytes(body, secret)
	return appendMessage(pairingPrefix(), FieldSecret, body)
}

// DecodePairing parses an inbound pairing-port message. Submessage contents
// are skipped; only the prefix and the discriminating field number are kept.
// Unknown fields and wire types are skipped without error.
func DecodePairing(b []byte) (Pairing, error) {
	var msg Pairing
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return msg, fmt.Errorf("%w: tag: %v", ErrDecode, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldProtocolVersion && typ == wire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return msg, fmt.Errorf("%w: protocol_version: %v", ErrDecode, protowire.ParseError(n))
			}
			msg.ProtocolVersion = v
			b = b[n:]
		case num == fieldStatus && typ == wire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return msg, fmt.Errorf("%w: status: %v", ErrDecode, protowire.ParseError(n))
			}
			msg.Status = v
			b = b[n:]
		default:
			if msg.Next == 0 && num >= FieldPairingRequest {
				msg.Next = num
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
