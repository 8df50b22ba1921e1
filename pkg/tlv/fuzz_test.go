//go:build fuzz
// +build fuzz

package tlv

import (
	"bytes"
	"testing"
)

// FuzzVarNum_RoundTrip checks that every value survives encode/decode and
// always takes the minimal form.
func FuzzVarNum_RoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(252))
	f.Add(uint64(253))
	f.Add(uint64(65535))
	f.Add(uint64(65536))
	f.Add(uint64(4294967295))
	f.Add(uint64(4294967296))

	f.Fuzz(func(t *testing.T, value uint64) {
		n := VarNum(value)
		encoded := n.Encode()

		if len(encoded) != n.Size() {
			t.Fatalf("encoded length %d, Size() %d", len(encoded), n.Size())
		}

		var wantSize int
		switch {
		case value <= 252:
			wantSize = 1
		case value <= 65535:
			wantSize = 3
		case value <= 4294967295:
			wantSize = 5
		default:
			wantSize = 9
		}
		if len(encoded) != wantSize {
			t.Fatalf("non-minimal encoding for %d: %d bytes, want %d", value, len(encoded), wantSize)
		}

		r := NewReader(encoded)
		decoded, err := DecodeVarNum(r)
		if err != nil {
			t.Fatalf("DecodeVarNum failed: %v", err)
		}
		if decoded != n {
			t.Fatalf("round trip mismatch: got %d, want %d", decoded, value)
		}
		if r.Remaining() != 0 {
			t.Fatalf("decode left %d bytes", r.Remaining())
		}
	})
}

// FuzzVarNum_DecodeRandom checks that arbitrary input never panics and that
// whatever decodes re-encodes to at most the consumed length.
func FuzzVarNum_DecodeRandom(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xFD})
	f.Add([]byte{0xFD, 0x00, 0x05})
	f.Add([]byte{0xFF, 1, 2, 3, 4, 5, 6, 7, 8})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		n, err := DecodeVarNum(r)
		if err != nil {
			return
		}
		consumed := len(data) - r.Remaining()
		if n.Size() > consumed {
			t.Fatalf("minimal size %d exceeds consumed %d", n.Size(), consumed)
		}
	})
}

// FuzzRecord_RoundTrip checks the framing engine against arbitrary payloads.
func FuzzRecord_RoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add(bytes.Repeat([]byte{0xAA}, 300))

	f.Fuzz(func(t *testing.T, payload []byte) {
		if len(payload) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		c := &genericNameComponent{Name: Bytes(payload)}
		encoded := Encode(c)

		if len(encoded) != Size(c) {
			t.Fatalf("encoded length %d, Size() %d", len(encoded), Size(c))
		}

		r := NewReader(encoded)
		decoded, err := Decode[*genericNameComponent](r)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded.Name, payload) {
			t.Fatalf("payload mismatch: got %x, want %x", decoded.Name, payload)
		}
		if r.Remaining() != 0 {
			t.Fatalf("decode left %d bytes", r.Remaining())
		}
	})
}

// FuzzRecord_DecodeRandom checks that malformed input fails cleanly instead
// of panicking or over-reading.
func FuzzRecord_DecodeRandom(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{8})
	f.Add([]byte{8, 5, 'h', 'i'})
	f.Add([]byte{8, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		r := NewReader(data)
		c, err := Decode[*genericNameComponent](r)
		if err != nil {
			return
		}
		consumed := len(data) - r.Remaining()
		if len(c.Name) > consumed {
			t.Fatalf("decoded %d payload bytes but consumed only %d", len(c.Name), consumed)
		}
	})
}
