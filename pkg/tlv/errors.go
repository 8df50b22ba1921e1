package tlv

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd reports that the buffer ran out before a required field
// could be read.
var ErrUnexpectedEnd = errors.New("tlv: unexpected end of buffer")

// TypeMismatchError reports a record whose type tag differs from the tag
// the expected shape declares.
type TypeMismatchError struct {
	Expected uint64
	Found    uint64
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("tlv: type mismatch: expected %d, found %d", e.Expected, e.Found)
}

// TrailingBytesError reports unconsumed bytes left inside a declared-length
// value region after the inner decode finished.
type TrailingBytesError struct {
	Type      uint64
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("tlv: %d trailing bytes in value region of type %d", e.Remaining, e.Type)
}

// NoMatchingCaseError reports a union decode whose type tag matched none of
// the declared alternatives.
type NoMatchingCaseError struct {
	Found uint64
}

func (e *NoMatchingCaseError) Error() string {
	return fmt.Sprintf("tlv: no union case for type %d", e.Found)
}

// SequenceError reports the failure of one element during a sequence
// decode. It unwraps to the element's own error.
type SequenceError struct {
	Index int
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("tlv: sequence element %d: %v", e.Index, e.Err)
}

func (e *SequenceError) Unwrap() error { return e.Err }
