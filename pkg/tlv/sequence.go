package tlv

import "errors"

// SequenceSize returns the total encoded size of seq: the sum of each
// element's full record size.
func SequenceSize[T Encoder](seq []T) int {
	total := 0
	for _, e := range seq {
		total += Size(e)
	}
	return total
}

// AppendSequence appends the concatenated record encodings of seq to buf,
// in order. Elements carry their own length fields; there is no separator.
func AppendSequence[T Encoder](buf []byte, seq []T) []byte {
	for _, e := range seq {
		buf = Append(buf, e)
	}
	return buf
}

// DecodeSequence decodes records of shape T from r until the region is
// exhausted. The region must consist of whole records: if an element fails
// to decode, including a partial trailing element, the whole sequence
// decode fails with a SequenceError. There is no best-effort result.
func DecodeSequence[PT interface {
	*T
	Decoder
}, T any](r *Reader) ([]PT, error) {
	var seq []PT
	for r.Remaining() > 0 {
		v, err := Decode[PT](r)
		if err != nil {
			return nil, &SequenceError{Index: len(seq), Err: err}
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// DecodeOptional decodes a record of shape T if one is next in r. A clean
// end of region, a different type tag or a truncated buffer yields nil with
// the cursor unmoved; any other failure is an error.
func DecodeOptional[PT interface {
	*T
	Decoder
}, T any](r *Reader) (PT, error) {
	var none PT
	if r.Remaining() == 0 {
		return none, nil
	}
	saved := *r
	v, err := Decode[PT](r)
	if err != nil {
		var mismatch *TypeMismatchError
		if errors.As(err, &mismatch) || errors.Is(err, ErrUnexpectedEnd) {
			*r = saved
			return none, nil
		}
		return none, err
	}
	return v, nil
}
