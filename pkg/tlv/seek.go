package tlv

// IsCritical reports whether records of the given type are critical. An
// unknown non-critical record may be skipped over; an unknown critical
// record must fail the decode.
func IsCritical(typ uint64) bool {
	return typ < 32 || typ&1 == 1
}

// Seek advances r to the start of the next record of the given type,
// skipping whole non-critical records of other types. It fails with a
// TypeMismatchError when it meets a critical record of a different type,
// and with ErrUnexpectedEnd when the buffer runs out first.
func Seek(r *Reader, typ uint64) error {
	for r.Remaining() > 0 {
		cur := *r
		found, err := DecodeVarNum(&cur)
		if err != nil {
			return err
		}
		if uint64(found) == typ {
			return nil
		}
		if IsCritical(uint64(found)) {
			return &TypeMismatchError{Expected: typ, Found: uint64(found)}
		}
		length, err := DecodeVarNum(&cur)
		if err != nil {
			return err
		}
		if _, err := cur.Next(int(length)); err != nil {
			return err
		}
		*r = cur
	}
	return ErrUnexpectedEnd
}
