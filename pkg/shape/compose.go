package shape

import (
	"errors"

	"github.com/njordio/ndn-tlv/pkg/tlv"
)

// Descriptor-valued field constructors. These mirror RecordField,
// SequenceField and OptionalField for nested shapes that are themselves
// declared as descriptors rather than as hand-written record types.

// RecordFieldOf binds a nested record declared by descriptor d.
func RecordFieldOf[T, F any](d *Descriptor[F], get func(*T) *F) Field[T] {
	return Field[T]{
		size:   func(v *T) int { return tlv.Size(d.Bind(get(v))) },
		append: func(v *T, buf []byte) []byte { return tlv.Append(buf, d.Bind(get(v))) },
		decode: func(v *T, r *tlv.Reader) error {
			if err := tlv.Seek(r, d.typ); err != nil {
				return err
			}
			return tlv.DecodeInto(r, d.Bind(get(v)))
		},
	}
}

// SequenceFieldOf binds an ordered run of records declared by descriptor d.
// Like SequenceField, decoding stops at the first record whose tag differs.
func SequenceFieldOf[T, F any](d *Descriptor[F], get func(*T) *[]*F) Field[T] {
	return Field[T]{
		size: func(v *T) int {
			total := 0
			for _, e := range *get(v) {
				total += tlv.Size(d.Bind(e))
			}
			return total
		},
		append: func(v *T, buf []byte) []byte {
			for _, e := range *get(v) {
				buf = tlv.Append(buf, d.Bind(e))
			}
			return buf
		},
		decode: func(v *T, r *tlv.Reader) error {
			for r.Remaining() > 0 {
				saved := *r
				e, err := d.Decode(r)
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

// OptionalFieldOf binds a possibly absent record declared by descriptor d.
func OptionalFieldOf[T, F any](d *Descriptor[F], get func(*T) **F) Field[T] {
	return Field[T]{
		size: func(v *T) int {
			if p := *get(v); p != nil {
				return tlv.Size(d.Bind(p))
			}
			return 0
		},
		append: func(v *T, buf []byte) []byte {
			if p := *get(v); p != nil {
				return tlv.Append(buf, d.Bind(p))
			}
			return buf
		},
		decode: func(v *T, r *tlv.Reader) error {
			if r.Remaining() == 0 {
				*get(v) = nil
				return nil
			}
			saved := *r
			p, err := d.Decode(r)
			if err != nil {
				var mismatch *tlv.TypeMismatchError
				if errors.As(err, &mismatch) || errors.Is(err, tlv.ErrUnexpectedEnd) {
					*r = saved
					*get(v) = nil
					return nil
				}
				return err
			}
			*get(v) = p
			return nil
		},
	}
}
