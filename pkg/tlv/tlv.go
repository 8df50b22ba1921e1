package tlv

// Record identifies a TLV record shape. Type must return the same fixed tag
// for every value of the shape; the tag is part of the shape's declaration,
// not of individual values.
type Record interface {
	Type() uint64
}

// Encoder is the encode half of the record contract. ValueSize reports the
// size of the value region alone, without the type and length fields;
// AppendValue writes exactly that many bytes. Encoding a structurally valid
// value never fails, so neither method returns an error.
type Encoder interface {
	Record
	ValueSize() int
	AppendValue(buf []byte) []byte
}

// Decoder is the decode half of the record contract. DecodeValue receives a
// Reader bounded to the record's declared value region and must consume it
// fully; a shape whose value is an open-ended sequence does so by
// construction.
type Decoder interface {
	Record
	DecodeValue(r *Reader) error
}

// Size returns the full encoded size of a record: type, length and value.
func Size(e Encoder) int {
	vs := e.ValueSize()
	return VarNum(e.Type()).Size() + VarNum(vs).Size() + vs
}

// Append appends the full record encoding of e to buf.
func Append(buf []byte, e Encoder) []byte {
	buf = VarNum(e.Type()).Append(buf)
	buf = VarNum(e.ValueSize()).Append(buf)
	return e.AppendValue(buf)
}

// Encode returns the full record encoding of e.
func Encode(e Encoder) []byte {
	return Append(make([]byte, 0, Size(e)), e)
}

// DecodeInto decodes one record from r into d.
//
// The type tag must equal d.Type(), the declared length must fit in the
// remaining buffer, and DecodeValue must consume the value region to
// exhaustion. After any error the cursor position is unspecified.
func DecodeInto(r *Reader, d Decoder) error {
	typ, err := DecodeVarNum(r)
	if err != nil {
		return err
	}
	if uint64(typ) != d.Type() {
		return &TypeMismatchError{Expected: d.Type(), Found: uint64(typ)}
	}
	length, err := DecodeVarNum(r)
	if err != nil {
		return err
	}
	sub, err := r.Sub(int(length))
	if err != nil {
		return err
	}
	if err := d.DecodeValue(sub); err != nil {
		return err
	}
	if sub.Remaining() != 0 {
		return &TrailingBytesError{Type: d.Type(), Remaining: sub.Remaining()}
	}
	return nil
}

// Decode decodes one record of shape T from r.
func Decode[PT interface {
	*T
	Decoder
}, T any](r *Reader) (PT, error) {
	v := PT(new(T))
	if err := DecodeInto(r, v); err != nil {
		var none PT
		return none, err
	}
	return v, nil
}

// Bytes is a raw byte payload: a value region with no TLV structure of its
// own. Its encoding is the identity; the enclosing record supplies the type
// and length framing.
type Bytes []byte

// Size returns the byte count.
func (b Bytes) Size() int { return len(b) }

// Append appends the payload to buf unchanged.
func (b Bytes) Append(buf []byte) []byte { return append(buf, b...) }

// DecodeFrom consumes the remainder of the bounded region r. The bytes are
// copied out of the backing buffer, so the payload stays valid after the
// buffer is reused.
func (b *Bytes) DecodeFrom(r *Reader) error {
	raw, err := r.Next(r.Remaining())
	if err != nil {
		return err
	}
	*b = append(Bytes(nil), raw...)
	return nil
}
