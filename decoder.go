package scale

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/scale/internal/encoding"
)

// A Decoder reads SCALE-encoded values from a byte slice by advancing a
// cursor over it. It never mutates the underlying bytes and never reads
// past their end: exhausting the input is reported as ErrUnexpectedEnd.
//
// Every method advances the cursor by exactly the number of bytes the
// corresponding Encoder method would have written, or fails without
// advancing. A Decoder is not safe for concurrent use.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder returns a decoder reading from b. The decoder borrows b; the
// caller must not modify it until decoding is done.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

// Finish fails with ErrTrailingBytes if unconsumed input remains.
func (d *Decoder) Finish() error {
	if n := d.Remaining(); n > 0 {
		return errors.Wrapf(ErrTrailingBytes, "%d bytes at offset %d", n, d.off)
	}
	return nil
}

func (d *Decoder) rest() []byte {
	return d.buf[d.off:]
}

// wrapAt adds the cursor position to decode errors.
func (d *Decoder) wrapAt(err error) error {
	return errors.Wrapf(err, "at offset %d", d.off)
}

// DecodeUint8 reads a single byte.
func (d *Decoder) DecodeUint8() (uint8, error) {
	x, n, err := encoding.DecodeUint8(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeUint16 reads 2 little-endian bytes.
func (d *Decoder) DecodeUint16() (uint16, error) {
	x, n, err := encoding.DecodeUint16(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeUint32 reads 4 little-endian bytes.
func (d *Decoder) DecodeUint32() (uint32, error) {
	x, n, err := encoding.DecodeUint32(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeUint64 reads 8 little-endian bytes.
func (d *Decoder) DecodeUint64() (uint64, error) {
	x, n, err := encoding.DecodeUint64(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeUint128 reads a 16-byte little-endian value as its low and high
// 64-bit halves.
func (d *Decoder) DecodeUint128() (lo, hi uint64, err error) {
	lo, hi, n, err := encoding.DecodeUint128(d.rest())
	if err != nil {
		return 0, 0, d.wrapAt(err)
	}
	d.off += n
	return lo, hi, nil
}

// DecodeInt8 reads a single two's complement byte.
func (d *Decoder) DecodeInt8() (int8, error) {
	x, n, err := encoding.DecodeInt8(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeInt16 reads 2 little-endian two's complement bytes.
func (d *Decoder) DecodeInt16() (int16, error) {
	x, n, err := encoding.DecodeInt16(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeInt32 reads 4 little-endian two's complement bytes.
func (d *Decoder) DecodeInt32() (int32, error) {
	x, n, err := encoding.DecodeInt32(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeInt64 reads 8 little-endian two's complement bytes.
func (d *Decoder) DecodeInt64() (int64, error) {
	x, n, err := encoding.DecodeInt64(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeInt128 reads a 16-byte little-endian two's complement value as its
// low unsigned and high signed 64-bit halves.
func (d *Decoder) DecodeInt128() (lo uint64, hi int64, err error) {
	lo, hi, n, err := encoding.DecodeInt128(d.rest())
	if err != nil {
		return 0, 0, d.wrapAt(err)
	}
	d.off += n
	return lo, hi, nil
}

// DecodeBool reads a boolean byte. Bytes other than 0x00 and 0x01 fail
// with ErrInvalidBool.
func (d *Decoder) DecodeBool() (bool, error) {
	x, n, err := encoding.DecodeBool(d.rest())
	if err != nil {
		return false, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeCompact reads a compact integer. Non-minimal encodings are
// accepted; big-integer mode values wider than 64 bits fail with
// ErrInvalidCompactInt.
func (d *Decoder) DecodeCompact() (uint64, error) {
	x, n, err := encoding.DecodeCompact(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return x, nil
}

// DecodeOption reads the presence tag of a general Option. When it returns
// true the caller decodes the payload right after. Options of bool must
// use DecodeOptionBool instead.
func (d *Decoder) DecodeOption() (bool, error) {
	present, n, err := encoding.DecodeOptionTag(d.rest())
	if err != nil {
		return false, d.wrapAt(err)
	}
	d.off += n
	return present, nil
}

// DecodeOptionBool reads the single-byte packing of Option<bool>. Bytes
// other than 0x00, 0x01 and 0x02 fail with ErrInvalidOptionBool.
func (d *Decoder) DecodeOptionBool() (present, value bool, err error) {
	present, value, n, err := encoding.DecodeOptionBool(d.rest())
	if err != nil {
		return false, false, d.wrapAt(err)
	}
	d.off += n
	return present, value, nil
}

// DecodeVariant reads a variant index and checks it against the declared
// variant count. The caller decodes the variant payload right after.
func (d *Decoder) DecodeVariant(total int) (int, error) {
	index, n, err := encoding.DecodeVariantIndex(d.rest(), total)
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return index, nil
}

// DecodeLen reads the compact-encoded element count of a variable-length
// sequence or map. The caller decodes each element right after and is
// responsible for bounding allocations made from the count.
func (d *Decoder) DecodeLen() (int, error) {
	x, n, err := encoding.DecodeCompact(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	if x > uint64(maxInt) {
		return 0, d.wrapAt(errors.Wrapf(ErrInvalidCompactInt, "length %d overflows int", x))
	}
	d.off += n
	return int(x), nil
}

// DecodeString reads a compact-encoded byte length followed by that many
// raw bytes. The bytes are copied into a new string; UTF-8 validity is the
// caller's concern.
func (d *Decoder) DecodeString() (string, error) {
	b, err := d.DecodeBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBytes reads a compact-encoded length followed by that many raw
// bytes. The returned slice aliases the decoder's input; the caller must
// copy it to retain it past the input's lifetime.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	start := d.off
	l, err := d.DecodeLen()
	if err != nil {
		return nil, err
	}
	if avail := d.Remaining(); l > avail {
		d.off = start
		return nil, d.wrapAt(errors.Wrapf(ErrUnexpectedEnd, "%d byte payload, %d available", l, avail))
	}
	b := d.buf[d.off : d.off+l : d.off+l]
	d.off += l
	return b, nil
}

// DecodeRune reads a u32 code point. Values that are not valid Unicode
// scalar values fail with ErrInvalidRune.
func (d *Decoder) DecodeRune() (rune, error) {
	r, n, err := encoding.DecodeRune(d.rest())
	if err != nil {
		return 0, d.wrapAt(err)
	}
	d.off += n
	return r, nil
}

const maxInt = int(^uint(0) >> 1)
