package scale

// A Marshaler describes its own shape to an Encoder, one event per field
// in declared order. Records encode positionally with no tags or names.
type Marshaler interface {
	MarshalSCALE(*Encoder) error
}

// An Unmarshaler rebuilds itself from a Decoder by issuing the exact dual
// of the calls its Marshaler counterpart makes.
type Unmarshaler interface {
	UnmarshalSCALE(*Decoder) error
}

// Marshal encodes v and returns its canonical byte sequence. Encoding the
// same value twice yields byte-identical output.
func Marshal(v Marshaler) ([]byte, error) {
	var enc Encoder
	return marshal(&enc, v)
}

// MarshalWithLimit is like Marshal but fails with ErrOutputLimitExceeded
// if the output would grow past limit bytes.
func MarshalWithLimit(v Marshaler, limit int) ([]byte, error) {
	enc := Encoder{limit: limit}
	return marshal(&enc, v)
}

func marshal(enc *Encoder, v Marshaler) ([]byte, error) {
	if err := v.MarshalSCALE(enc); err != nil {
		return nil, err
	}
	if err := enc.Err(); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// Unmarshal decodes data into v. The whole input must be consumed:
// leftover bytes fail with ErrTrailingBytes. On error the content of v is
// unspecified and must not be used.
func Unmarshal(data []byte, v Unmarshaler) error {
	dec := NewDecoder(data)
	if err := v.UnmarshalSCALE(dec); err != nil {
		return err
	}
	return dec.Finish()
}

// UnmarshalPrefix decodes a value from the front of data into v and
// returns the number of bytes consumed, ignoring whatever follows.
func UnmarshalPrefix(data []byte, v Unmarshaler) (int, error) {
	dec := NewDecoder(data)
	if err := v.UnmarshalSCALE(dec); err != nil {
		return 0, err
	}
	return dec.Offset(), nil
}
