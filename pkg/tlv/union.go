package tlv

import "fmt"

// UnionCase binds one record shape to the sum interface I.
type UnionCase[I any] struct {
	typ    uint64
	decode func(*Reader) (I, error)
	err    error
}

// Case declares a union alternative of shape T. The shape's pointer type
// must implement Decoder and the sum interface I; the latter is checked
// when the union is built.
func Case[I any, PT interface {
	*T
	Decoder
}, T any]() UnionCase[I] {
	probe := PT(new(T))
	if _, ok := any(probe).(I); !ok {
		return UnionCase[I]{err: fmt.Errorf("tlv: union case %T does not implement the sum interface", probe)}
	}
	return UnionCase[I]{
		typ: probe.Type(),
		decode: func(r *Reader) (I, error) {
			var none I
			v, err := Decode[PT](r)
			if err != nil {
				return none, err
			}
			return any(v).(I), nil
		},
	}
}

// Union decodes a value that is exactly one of a closed set of record
// shapes, selected by type tag. Encoding needs no dispatch: the active
// alternative already implements Encoder, so Encode and Size apply to it
// directly.
type Union[I any] struct {
	cases []UnionCase[I]
}

// NewUnion builds a union from its alternatives. Two alternatives declaring
// the same tag is a configuration error, rejected here rather than resolved
// by declaration order.
func NewUnion[I any](cases ...UnionCase[I]) (*Union[I], error) {
	seen := make(map[uint64]bool, len(cases))
	for _, c := range cases {
		if c.err != nil {
			return nil, c.err
		}
		if seen[c.typ] {
			return nil, fmt.Errorf("tlv: duplicate union tag %d", c.typ)
		}
		seen[c.typ] = true
	}
	return &Union[I]{cases: cases}, nil
}

// MustUnion is NewUnion for package-level union declarations; it panics on
// a misconfigured case set.
func MustUnion[I any](cases ...UnionCase[I]) *Union[I] {
	u, err := NewUnion(cases...)
	if err != nil {
		panic(err)
	}
	return u
}

// Decode peeks the next record's type tag and dispatches to the matching
// alternative. A tag matching no alternative fails with
// NoMatchingCaseError; an error from the matching alternative is returned
// as-is, never retried against later alternatives.
func (u *Union[I]) Decode(r *Reader) (I, error) {
	var none I
	typ, err := r.PeekVarNum()
	if err != nil {
		return none, err
	}
	for _, c := range u.cases {
		if c.typ == uint64(typ) {
			return c.decode(r)
		}
	}
	return none, &NoMatchingCaseError{Found: uint64(typ)}
}
