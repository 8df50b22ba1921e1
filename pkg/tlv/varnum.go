package tlv

import (
	"encoding/binary"
	"math"
)

// VarNum is the variable-length unsigned integer used for TLV type and
// length fields.
//
// Values up to 252 occupy a single byte. Larger values are introduced by a
// marker byte (0xFD, 0xFE or 0xFF) selecting a 2, 4 or 8 byte big-endian
// payload. Encoding always picks the shortest form that holds the value;
// decoding accepts non-minimal forms.
type VarNum uint64

// Size returns the encoded length in bytes: 1, 3, 5 or 9.
func (n VarNum) Size() int {
	switch {
	case n < 0xFD:
		return 1
	case n <= math.MaxUint16:
		return 3
	case n <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// Append appends the encoding of n to buf and returns the extended buffer.
func (n VarNum) Append(buf []byte) []byte {
	switch {
	case n < 0xFD:
		return append(buf, byte(n))
	case n <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(buf, 0xFD), uint16(n))
	case n <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(buf, 0xFE), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(buf, 0xFF), uint64(n))
	}
}

// Encode returns the encoding of n in a fresh buffer.
func (n VarNum) Encode() []byte {
	return n.Append(make([]byte, 0, n.Size()))
}

// DecodeVarNum reads one VarNum from r. It fails with ErrUnexpectedEnd if
// the marker byte promises more bytes than remain.
func DecodeVarNum(r *Reader) (VarNum, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch first {
	case 0xFD:
		b, err := r.Next(2)
		if err != nil {
			return 0, err
		}
		return VarNum(binary.BigEndian.Uint16(b)), nil
	case 0xFE:
		b, err := r.Next(4)
		if err != nil {
			return 0, err
		}
		return VarNum(binary.BigEndian.Uint32(b)), nil
	case 0xFF:
		b, err := r.Next(8)
		if err != nil {
			return 0, err
		}
		return VarNum(binary.BigEndian.Uint64(b)), nil
	default:
		return VarNum(first), nil
	}
}
