package shape

import (
	"errors"

	"github.com/njordio/ndn-tlv/pkg/tlv"
)

// BytesField binds a raw byte payload occupying the rest of the value
// region. It must be the final field of its shape.
func BytesField[T any](get func(*T) *tlv.Bytes) Field[T] {
	return Field[T]{
		size:   func(v *T) int { return get(v).Size() },
		append: func(v *T, buf []byte) []byte { return get(v).Append(buf) },
		decode: func(v *T, r *tlv.Reader) error { return get(v).DecodeFrom(r) },
	}
}

// RecordField binds a nested record field. Before decoding, unknown
// non-critical records in front of the field are skipped; an unknown
// critical record fails the decode with a TypeMismatchError.
func RecordField[T any, PF interface {
	*F
	tlv.Encoder
	tlv.Decoder
}, F any](get func(*T) PF) Field[T] {
	return Field[T]{
		size:   func(v *T) int { return tlv.Size(get(v)) },
		append: func(v *T, buf []byte) []byte { return tlv.Append(buf, get(v)) },
		decode: func(v *T, r *tlv.Reader) error {
			if err := tlv.Seek(r, get(v).Type()); err != nil {
				return err
			}
			return tlv.DecodeInto(r, get(v))
		},
	}
}

// SequenceField binds an ordered run of same-shaped records. Decoding
// stops at the first record whose tag differs, leaving it for the fields
// that follow, so a sequence may sit in the middle of a shape.
func SequenceField[T any, PF interface {
	*F
	tlv.Encoder
	tlv.Decoder
}, F any](get func(*T) *[]PF) Field[T] {
	return Field[T]{
		size:   func(v *T) int { return tlv.SequenceSize(*get(v)) },
		append: func(v *T, buf []byte) []byte { return tlv.AppendSequence(buf, *get(v)) },
		decode: func(v *T, r *tlv.Reader) error {
			for r.Remaining() > 0 {
				saved := *r
				e, err := tlv.Decode[PF](r)
				if err != nil {
					var mismatch *tlv.TypeMismatchError
					if errors.As(err, &mismatch) {
						*r = saved
						return nil
					}
					return err
				}
				*get(v) = append(*get(v), e)
			}
			return nil
		},
	}
}

// OptionalField binds a record that may be absent. The field is left nil
// when the next record carries a different tag or the region has ended.
func OptionalField[T any, PF interface {
	*F
	tlv.Encoder
	tlv.Decoder
}, F any](get func(*T) *PF) Field[T] {
	return Field[T]{
		size: func(v *T) int {
			if p := *get(v); p != nil {
				return tlv.Size(p)
			}
			return 0
		},
		append: func(v *T, buf []byte) []byte {
			if p := *get(v); p != nil {
				return tlv.Append(buf, p)
			}
			return buf
		},
		decode: func(v *T, r *tlv.Reader) error {
			p, err := tlv.DecodeOptional[PF](r)
			if err != nil {
				return err
			}
			*get(v) = p
			return nil
		},
	}
}
