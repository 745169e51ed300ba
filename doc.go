/*
Package scale implements the SCALE binary encoding: a compact,
deterministic, little-endian format with no embedded type information.
Both sides of an exchange must agree on the shape of the encoded value
out of band.

The codec never inspects concrete Go types. Types describe their own
shape by implementing Marshaler and Unmarshaler, driving an Encoder or a
Decoder through the value shape by shape:

	type Point struct {
		X, Y int8
	}

	func (p *Point) MarshalSCALE(enc *scale.Encoder) error {
		enc.EncodeInt8(p.X)
		enc.EncodeInt8(p.Y)
		return nil
	}

	func (p *Point) UnmarshalSCALE(dec *scale.Decoder) error {
		var err error
		if p.X, err = dec.DecodeInt8(); err != nil {
			return err
		}
		p.Y, err = dec.DecodeInt8()
		return err
	}

Encoding is deterministic: one value produces exactly one byte sequence.
Decoding is exact: malformed or truncated input is rejected with one of
the sentinel errors of this package, never silently misread.

Unmarshal requires the input to be fully consumed and fails with
ErrTrailingBytes otherwise; UnmarshalPrefix decodes a value from the
front of the input and reports how many bytes it used.
*/
package scale
