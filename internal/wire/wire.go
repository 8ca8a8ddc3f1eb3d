// Package wire implements the length-delimited protobuf framing used on the
// pairing and control ports: base-128 varints, field tags, and a stream
// reassembler that tolerates arbitrary TCP chunking.
package wire

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Number and Type alias protowire so callers don't import it twice.
type (
	Number = protowire.Number
	Type   = protowire.Type
)

const (
	VarintType  = protowire.VarintType
	Fixed64Type = protowire.Fixed64Type
	BytesType   = protowire.BytesType
	Fixed32Type = protowire.Fixed32Type
)

// MaxFrameSize bounds a single message on either port. Polo messages are
// tiny; anything past this is a desynchronized or hostile stream.
const MaxFrameSize = 1 << 16

// ErrMalformed reports a varint or frame that can never become valid, no
// matter how many more bytes arrive.
var ErrMalformed = errors.New("wire: malformed input")

// AppendVarint appends v in base-128 little-endian with continuation bits.
func AppendVarint(b []byte, v uint64) []byte {
	return protowire.AppendVarint(b, v)
}

// EncodeVarint returns the varint encoding of v.
func EncodeVarint(v uint64) []byte {
	return protowire.AppendVarint(nil, v)
}

// DecodeVarint decodes a varint from the front of b. It returns n == 0 with
// a nil error when b is a truncated prefix of a valid varint, and
// ErrMalformed when the encoding overflows 64 bits.
func DecodeVarint(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		if errors.Is(protowire.ParseError(n), io.ErrUnexpectedEOF) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
	}
	return v, n, nil
}

// AppendTag appends the tag varint (num << 3 | typ).
func AppendTag(b []byte, num Number, typ Type) []byte {
	return protowire.AppendTag(b, num, typ)
}

// Frame prepends varint(len(payload)) to payload.
func Frame(payload []byte) []byte {
	out := protowire.AppendVarint(nil, uint64(len(payload)))
	return append(out, payload...)
}

// ReadFrame reads one length-prefixed frame from the front of buf. It
// returns n == 0 when either the length varint or the body is incomplete,
// and ErrMalformed when the declared length exceeds MaxFrameSize. The
// returned payload aliases buf.
func ReadFrame(buf []byte) (payload []byte, n int, err error) {
	size, prefix, err := DecodeVarint(buf)
	if err != nil {
		return nil, 0, err
	}
	if prefix == 0 {
		return nil, 0, nil
	}
	if size > MaxFrameSize {
		return nil, 0, fmt.Errorf("%w: frame of %d bytes", ErrMalformed, size)
	}
	total := prefix + int(size)
	if len(buf) < total {
		return nil, 0, nil
	}
	return buf[prefix:total], total, nil
}

// Reassembler accumulates received bytes and yields complete frames. It is
// owned by exactly one reader goroutine.
type Reassembler struct {
	buf []byte
}

// Push appends freshly received bytes.
func (r *Reassembler) Push(data []byte) {
	r.buf = append(r.buf, data...)
}

// Next returns the next complete frame, or nil when none is buffered. The
// returned slice is a copy and remains valid after further Push calls.
func (r *Reassembler) Next() ([]byte, error) {
	payload, n, err := ReadFrame(r.buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	r.buf = r.buf[:copy(r.buf, r.buf[n:])]
	return out, nil
}

// Pending reports how many bytes are buffered and not yet returned by Next,
// including any complete frames still waiting to be taken.
func (r *Reassembler) Pending() int {
	return len(r.buf)
}
