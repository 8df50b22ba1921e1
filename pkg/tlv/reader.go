package tlv

// Reader is a cursor over a contiguous byte region. Decodes consume bytes
// sequentially; nested decodes share the same advancing position through
// bounded sub-readers.
//
// A Reader never mutates the backing region and never retains it beyond the
// decode call it was created for. Copying a Reader by value yields an
// independent cursor over the same region, which is how look-ahead is done.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a cursor positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, ErrUnexpectedEnd
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Next consumes the next n bytes and returns them as a view into the
// backing region. Callers that keep the bytes past the decode call must
// copy them.
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrUnexpectedEnd
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Sub consumes the next n bytes and returns a Reader bounded to exactly
// that region.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.Next(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b), nil
}

// PeekVarNum decodes the VarNum at the current position without consuming
// it.
func (r *Reader) PeekVarNum() (VarNum, error) {
	cp := *r
	return DecodeVarNum(&cp)
}
