package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestVarintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 150, 300, 1<<32 - 1, 1<<64 - 1} {
		enc := EncodeVarint(v)
		got, n, err := DecodeVarint(enc)
		if err != nil {
			t.Fatalf("DecodeVarint(%d): %v", v, err)
		}
		if got != v || n != len(enc) {
			t.Fatalf("DecodeVarint(%d) = (%d, %d), want (%d, %d)", v, got, n, v, len(enc))
		}
	}
}

func TestVarint150(t *testing.T) {
	enc := EncodeVarint(150)
	if !bytes.Equal(enc, []byte{0x96, 0x01}) {
		t.Fatalf("EncodeVarint(150) = %x, want 9601", enc)
	}
	v, n, err := DecodeVarint(enc)
	if err != nil || v != 150 || n != 2 {
		t.Fatalf("DecodeVarint = (%d, %d, %v), want (150, 2, nil)", v, n, err)
	}
}

func TestVarintTruncated(t *testing.T) {
	_, n, err := DecodeVarint([]byte{0x96})
	if err != nil {
		t.Fatalf("truncated varint should not error, got %v", err)
	}
	if n != 0 {
		t.Fatalf("truncated varint consumed %d bytes, want 0", n)
	}
}

func TestVarintOverflow(t *testing.T) {
	over := bytes.Repeat([]byte{0xFF}, 10)
	over = append(over, 0x01)
	_, _, err := DecodeVarint(over)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("overflowing varint error = %v, want ErrMalformed", err)
	}
}

func TestTagEncoding(t *testing.T) {
	if got := AppendTag(nil, 1, VarintType); !bytes.Equal(got, []byte{0x08}) {
		t.Fatalf("Tag(1, varint) = %x, want 08", got)
	}
	if got := AppendTag(nil, 10, BytesType); !bytes.Equal(got, []byte{0x52}) {
		t.Fatalf("Tag(10, bytes) = %x, want 52", got)
	}
	if got := AppendTag(nil, 20, BytesType); !bytes.Equal(got, []byte{0xA2, 0x01}) {
		t.Fatalf("Tag(20, bytes) = %x, want a201", got)
	}
	if got := AppendTag(nil, 30, BytesType); !bytes.Equal(got, []byte{0xF2, 0x01}) {
		t.Fatalf("Tag(30, bytes) = %x, want f201", got)
	}
	if got := AppendTag(nil, 40, BytesType); !bytes.Equal(got, []byte{0xC2, 0x02}) {
		t.Fatalf("Tag(40, bytes) = %x, want c202", got)
	}
}

func TestReadFrameWithSuffix(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	framed := Frame(payload)
	buf := append(append([]byte(nil), framed...), 0x99, 0x98)

	got, n, err := ReadFrame(buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, payload) || n != len(framed) {
		t.Fatalf("ReadFrame = (%x, %d), want (%x, %d)", got, n, payload, len(framed))
	}
}

func TestReadFrameIncomplete(t *testing.T) {
	framed := Frame(bytes.Repeat([]byte{0xAB}, 300))
	for cut := 0; cut < len(framed); cut++ {
		_, n, err := ReadFrame(framed[:cut])
		if err != nil {
			t.Fatalf("cut %d: %v", cut, err)
		}
		if n != 0 {
			t.Fatalf("cut %d: consumed %d bytes from incomplete frame", cut, n)
		}
	}
}

func TestReadFrameTooLarge(t *testing.T) {
	buf := EncodeVarint(MaxFrameSize + 1)
	_, _, err := ReadFrame(buf)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("oversized frame error = %v, want ErrMalformed", err)
	}
}

func TestReassemblerEverySplit(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	framed := Frame(payload)

	for cut := 0; cut <= len(framed); cut++ {
		var r Reassembler
		var got [][]byte

		for _, chunk := range [][]byte{framed[:cut], framed[cut:]} {
			r.Push(chunk)
			for {
				f, err := r.Next()
				if err != nil {
					t.Fatalf("cut %d: %v", cut, err)
				}
				if f == nil {
					break
				}
				got = append(got, f)
			}
		}

		if len(got) != 1 || !bytes.Equal(got[0], payload) {
			t.Fatalf("cut %d: frames = %x, want exactly [%x]", cut, got, payload)
		}
	}
}

func TestReassemblerTwoFramesOneChunk(t *testing.T) {
	a := []byte{0x01}
	b := []byte{0x02, 0x03}
	chunk := append(Frame(a), Frame(b)...)

	var r Reassembler
	r.Push(chunk)

	first, err := r.Next()
	if err != nil || !bytes.Equal(first, a) {
		t.Fatalf("first frame = (%x, %v), want %x", first, err, a)
	}
	second, err := r.Next()
	if err != nil || !bytes.Equal(second, b) {
		t.Fatalf("second frame = (%x, %v), want %x", second, err, b)
	}
	third, err := r.Next()
	if err != nil || third != nil {
		t.Fatalf("third frame = (%x, %v), want none", third, err)
	}
	if r.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", r.Pending())
	}
}

func TestReassemblerPartialVarintAlone(t *testing.T) {
	var r Reassembler
	r.Push([]byte{0x80})
	f, err := r.Next()
	if err != nil || f != nil {
		t.Fatalf("partial length varint yielded (%x, %v), want nothing", f, err)
	}
}
