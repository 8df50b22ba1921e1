// Package shape builds runtime codecs for TLV record shapes from
// declarative descriptors.
//
// A shape registers its fixed type tag and an ordered list of fields once;
// a single generic engine then iterates that list for encode, decode and
// size. The package removes the per-shape boilerplate of wiring tags and
// field-by-field sequential codecs by hand, and is the surface a code
// generator would emit registrations against. Everything flows through the
// public contract of pkg/tlv.
package shape

import "github.com/njordio/ndn-tlv/pkg/tlv"

// Field drives one field of a record shape's value region.
type Field[T any] struct {
	size   func(*T) int
	append func(*T, []byte) []byte
	decode func(*T, *tlv.Reader) error
}

// Descriptor is a runtime-built codec for one record shape: a fixed type
// tag plus an ordered field list.
type Descriptor[T any] struct {
	typ    uint64
	fields []Field[T]
}

// New declares a record shape with the given tag and fields. Fields encode
// and decode in declaration order. A shape with no fields is an empty
// record, encoded as tag plus zero length.
func New[T any](typ uint64, fields ...Field[T]) *Descriptor[T] {
	return &Descriptor[T]{typ: typ, fields: fields}
}

// Type returns the shape's type tag.
func (d *Descriptor[T]) Type() uint64 { return d.typ }

// Size returns the full encoded record size of v.
func (d *Descriptor[T]) Size(v *T) int { return tlv.Size(d.Bind(v)) }

// Append appends the full record encoding of v to buf.
func (d *Descriptor[T]) Append(buf []byte, v *T) []byte { return tlv.Append(buf, d.Bind(v)) }

// Encode returns the full record encoding of v.
func (d *Descriptor[T]) Encode(v *T) []byte { return tlv.Encode(d.Bind(v)) }

// Decode decodes one record of this shape from r.
func (d *Descriptor[T]) Decode(r *tlv.Reader) (*T, error) {
	v := new(T)
	if err := tlv.DecodeInto(r, d.Bind(v)); err != nil {
		return nil, err
	}
	return v, nil
}

// Bind couples the descriptor with a concrete value, yielding a record
// that satisfies tlv.Encoder and tlv.Decoder. Bound values let descriptor
// shapes nest inside hand-written ones and vice versa.
func (d *Descriptor[T]) Bind(v *T) Bound[T] { return Bound[T]{d: d, v: v} }

// Bound is a (descriptor, value) pair implementing the tlv record
// contract.
type Bound[T any] struct {
	d *Descriptor[T]
	v *T
}

func (b Bound[T]) Type() uint64 { return b.d.typ }

func (b Bound[T]) ValueSize() int {
	total := 0
	for _, f := range b.d.fields {
		total += f.size(b.v)
	}
	return total
}

func (b Bound[T]) AppendValue(buf []byte) []byte {
	for _, f := range b.d.fields {
		buf = f.append(b.v, buf)
	}
	return buf
}

func (b Bound[T]) DecodeValue(r *tlv.Reader) error {
	for _, f := range b.d.fields {
		if err := f.decode(b.v, r); err != nil {
			return err
		}
	}
	return nil
}
