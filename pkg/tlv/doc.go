// Package tlv implements Type-Length-Value encoding and decoding as used by
// Named Data Networking packet formats.
//
// The package is a codec core: it frames arbitrarily nested binary records,
// it does not interpret them. Network transport, file I/O and packet
// semantics above the TLV layer belong to callers.
//
// # Wire Format
//
// Every record is a triple:
//
//	[VarNum type][VarNum length][value bytes]
//
// Both the type tag and the length are VarNums: variable-length unsigned
// integers with 1, 3, 5 or 9 byte forms selected by magnitude.
//
//   - 0 to 252: one byte holding the value itself
//   - 253 to 65535: marker byte 0xFD, then 2-byte big-endian value
//   - 65536 to 4294967295: marker byte 0xFE, then 4-byte big-endian value
//   - larger: marker byte 0xFF, then 8-byte big-endian value
//
// Encoding always emits the shortest form that can hold the value. Decoding
// is lenient and accepts longer-than-necessary forms.
//
// # Record Contract
//
// A record shape declares a fixed type tag and an inner codec for its value
// region by implementing Encoder and Decoder. The framing engine supplies
// the wrapper: Encode writes tag, length and value; DecodeInto verifies the
// tag, bounds a sub-region to the declared length and hands it to the
// shape's DecodeValue. Sizes are computed up front via ValueSize, never by
// measuring encoded bytes after the fact.
//
// Value regions compose recursively. A region may hold a raw byte payload
// (Bytes), nested records, an ordered run of same-shaped records
// (DecodeSequence), an optional record (DecodeOptional), or one of a closed
// set of alternatives selected by tag (Union).
//
// # Decoding and Cursors
//
// Decoding reads from a Reader, a cursor over a contiguous byte region.
// Every decode consumes exactly the bytes it is responsible for and leaves
// the cursor on the next sibling, so nested and top-level decodes share one
// advancing position. The Reader borrows the caller's buffer for the
// duration of the call; decoded byte payloads are copied out and remain
// valid after the buffer is reused.
//
// # Error Handling
//
// Decoding is fail-fast: a single malformed nested field fails the whole
// top-level decode, and no partial result is returned. Errors are typed so
// callers can tell apart a truncated buffer (ErrUnexpectedEnd), a tag that
// does not match the expected shape (TypeMismatchError), unconsumed bytes
// inside a declared-length region (TrailingBytesError), a union tag with no
// matching alternative (NoMatchingCaseError) and a failed sequence element
// (SequenceError). Encoding structurally valid values never fails.
//
// # Thread Safety
//
// The codec is stateless: concurrent encodes and decodes over different
// buffers need no synchronization. A Reader assumes exclusive access for
// the duration of one top-level decode.
package tlv
