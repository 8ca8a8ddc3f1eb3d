package polo

import (
	"bytes"
	"testing"

	"atvremote/internal/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

var testDevice = DeviceInfo{
	Model:       "assistant",
	Vendor:      "atvremote",
	Unknown1:    1,
	Version:     "10",
	PackageName: "atvremote",
	AppVersion:  "1.0",
}

func TestPairingRequestPrefix(t *testing.T) {
	msg := EncodePairingRequest("client", "service", testDevice)
	want := []byte{0x08, 0x02, 0x10, 0xC8, 0x01, 0x52}
	if !bytes.Equal(msg[:len(want)], want) {
		t.Fatalf("prefix = %x, want %x", msg[:len(want)], want)
	}
}

func TestSecretEncoding(t *testing.T) {
	msg := EncodeSecret([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	want := []byte{
		0x08, 0x02, 0x10, 0xC8, 0x01, // version 2, status 200
		0xC2, 0x02, 0x06, // field 40, 6 bytes
		0x0A, 0x04, 0xDE, 0xAD, 0xBE, 0xEF, // PairingSecret{secret}
	}
	if !bytes.Equal(msg, want) {
		t.Fatalf("EncodeSecret = %x, want %x", msg, want)
	}
}

func TestDecodePairingDiscriminator(t *testing.T) {
	cases := []struct {
		name string
		msg  []byte
		next wire.Number
	}{
		{"request", EncodePairingRequest("c", "s", testDevice), FieldPairingRequest},
		{"options", EncodeOptions(), FieldOptions},
		{"configuration", EncodeConfiguration(), FieldConfiguration},
		{"secret", EncodeSecret(make([]byte, 32)), FieldSecret},
	}
	for _, tc := range cases {
		got, err := DecodePairing(tc.msg)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got.ProtocolVersion != 2 || got.Status != StatusOK || got.Next != tc.next {
			t.Fatalf("%s: decoded %+v, want version 2, status 200, next %d", tc.name, got, tc.next)
		}
	}
}

func TestDecodePairingBadSecretStatus(t *testing.T) {
	b := wire.AppendTag(nil, 1, wire.VarintType)
	b = wire.AppendVarint(b, 2)
	b = wire.AppendTag(b, 2, wire.VarintType)
	b = wire.AppendVarint(b, StatusBadSecret)

	got, err := DecodePairing(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusBadSecret || got.Next != 0 {
		t.Fatalf("decoded %+v, want status 402 and no payload field", got)
	}
}

func TestDecodePairingSkipsExtraFields(t *testing.T) {
	// Version, status, an unhandled varint field 5, then the options echo.
	b := wire.AppendTag(nil, 1, wire.VarintType)
	b = wire.AppendVarint(b, 2)
	b = wire.AppendTag(b, 2, wire.VarintType)
	b = wire.AppendVarint(b, StatusOK)
	b = wire.AppendTag(b, 5, wire.VarintType)
	b = wire.AppendVarint(b, 77)
	b = wire.AppendTag(b, FieldOptions, wire.BytesType)
	b = protowire.AppendBytes(b, nil)

	got, err := DecodePairing(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.Next != FieldOptions {
		t.Fatalf("next = %d, want %d", got.Next, FieldOptions)
	}
}

func TestKeyInjectBody(t *testing.T) {
	got := KeyInjectBody(23, DirectionPress)
	want := []byte{0x08, 0x17, 0x10, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("KeyInjectBody(23, press) = %x, want %x", got, want)
	}
}

func TestKeyInjectMessage(t *testing.T) {
	got := EncodeKeyInject(23, DirectionRelease)
	want := []byte{0x52, 0x04, 0x08, 0x17, 0x10, 0x02}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeKeyInject = %x, want %x", got, want)
	}
}

func TestPingRequestTag(t *testing.T) {
	if got := wire.AppendTag(nil, FieldPingRequest, wire.BytesType); !bytes.Equal(got, []byte{0x42}) {
		t.Fatalf("ping request tag = %x, want 42", got)
	}
	if got := EncodePingResponse(42); got[0] != 0x4A {
		t.Fatalf("ping response tag = %x, want 4a", got[0])
	}
}

func TestDecodeRemoteConfigureRoundTrip(t *testing.T) {
	msg := EncodeConfigure(622, testDevice)
	got, err := DecodeRemote(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Configure == nil || got.Configure.Code1 != 622 {
		t.Fatalf("decoded %+v, want configure with code1 622", got)
	}
}

func TestDecodeRemotePing(t *testing.T) {
	body := wire.AppendTag(nil, 1, wire.VarintType)
	body = wire.AppendVarint(body, 42)
	msg := wire.AppendTag(nil, FieldPingRequest, wire.BytesType)
	msg = protowire.AppendBytes(msg, body)

	got, err := DecodeRemote(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got.PingRequest == nil || got.PingRequest.ID != 42 {
		t.Fatalf("decoded %+v, want ping request id 42", got)
	}
}

func TestDecodeRemoteUnknownFieldSkipped(t *testing.T) {
	// An unhandled field 7, then a ping request. Both must survive.
	msg := wire.AppendTag(nil, 7, wire.VarintType)
	msg = wire.AppendVarint(msg, 9)
	body := wire.AppendTag(nil, 1, wire.VarintType)
	body = wire.AppendVarint(body, 7)
	msg = wire.AppendTag(msg, FieldPingRequest, wire.BytesType)
	msg = protowire.AppendBytes(msg, body)

	got, err := DecodeRemote(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unknown != 7 {
		t.Fatalf("unknown = %d, want 7", got.Unknown)
	}
	if got.PingRequest == nil || got.PingRequest.ID != 7 {
		t.Fatalf("ping after unknown field not parsed: %+v", got)
	}
}

func TestDecodeRemoteConfigureAck(t *testing.T) {
	msg := EncodeConfigureAck(411)
	got, err := DecodeRemote(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got.ConfigureAck == nil || got.ConfigureAck.Code1 != 411 {
		t.Fatalf("decoded %+v, want configure_ack code1 411", got)
	}
}
