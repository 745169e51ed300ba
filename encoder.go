package scale

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/chaisql/scale/internal/encoding"
)

// An Encoder appends the SCALE representation of values to a growable
// buffer. It exposes one method per value shape; a Marshaler calls them in
// the declared order of its fields.
//
// Methods that cannot fail for value-shape reasons return nothing. If a
// size limit is configured and exceeded, the encoder stops appending and
// Err reports ErrOutputLimitExceeded; Marshal surfaces it to the caller.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf   []byte
	limit int
	err   error
}

// NewEncoder returns an encoder with no output size limit.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// NewEncoderWithLimit returns an encoder that refuses to grow its output
// past limit bytes.
func NewEncoderWithLimit(limit int) *Encoder {
	return &Encoder{limit: limit}
}

// Bytes returns the encoded output. The slice is owned by the encoder and
// is only valid until the next encode call.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Err returns the first error the encoder ran into, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Reset discards the buffer content and clears any sticky error, keeping
// the allocated capacity and the configured limit.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.err = nil
}

// Grow reserves capacity for at least n more bytes.
func (e *Encoder) Grow(n int) {
	e.buf = slices.Grow(e.buf, n)
}

// checkLimit truncates the buffer back to its size before the last append
// when the limit is exceeded. Once the limit has been hit every later
// append is undone as well, so a failed encode never grows the output.
func (e *Encoder) checkLimit(prev int) {
	if e.err != nil {
		e.buf = e.buf[:prev]
		return
	}
	if e.limit > 0 && len(e.buf) > e.limit {
		e.buf = e.buf[:prev]
		e.err = errors.Wrapf(ErrOutputLimitExceeded, "limit %d", e.limit)
	}
}

// EncodeUint8 appends n as a single byte.
func (e *Encoder) EncodeUint8(n uint8) {
	prev := len(e.buf)
	e.buf = encoding.EncodeUint8(e.buf, n)
	e.checkLimit(prev)
}

// EncodeUint16 appends n as 2 little-endian bytes.
func (e *Encoder) EncodeUint16(n uint16) {
	prev := len(e.buf)
	e.buf = encoding.EncodeUint16(e.buf, n)
	e.checkLimit(prev)
}

// EncodeUint32 appends n as 4 little-endian bytes.
func (e *Encoder) EncodeUint32(n uint32) {
	prev := len(e.buf)
	e.buf = encoding.EncodeUint32(e.buf, n)
	e.checkLimit(prev)
}

// EncodeUint64 appends n as 8 little-endian bytes.
func (e *Encoder) EncodeUint64(n uint64) {
	prev := len(e.buf)
	e.buf = encoding.EncodeUint64(e.buf, n)
	e.checkLimit(prev)
}

// EncodeUint128 appends the 128-bit value hi<<64 | lo as 16 little-endian
// bytes.
func (e *Encoder) EncodeUint128(lo, hi uint64) {
	prev := len(e.buf)
	e.buf = encoding.EncodeUint128(e.buf, lo, hi)
	e.checkLimit(prev)
}

// EncodeInt8 appends n as its two's complement byte.
func (e *Encoder) EncodeInt8(n int8) {
	prev := len(e.buf)
	e.buf = encoding.EncodeInt8(e.buf, n)
	e.checkLimit(prev)
}

// EncodeInt16 appends n as 2 little-endian two's complement bytes.
func (e *Encoder) EncodeInt16(n int16) {
	prev := len(e.buf)
	e.buf = encoding.EncodeInt16(e.buf, n)
	e.checkLimit(prev)
}

// EncodeInt32 appends n as 4 little-endian two's complement bytes.
func (e *Encoder) EncodeInt32(n int32) {
	prev := len(e.buf)
	e.buf = encoding.EncodeInt32(e.buf, n)
	e.checkLimit(prev)
}

// EncodeInt64 appends n as 8 little-endian two's complement bytes.
func (e *Encoder) EncodeInt64(n int64) {
	prev := len(e.buf)
	e.buf = encoding.EncodeInt64(e.buf, n)
	e.checkLimit(prev)
}

// EncodeInt128 appends the 128-bit two's complement value with low
// 64 bits lo and high 64 bits hi as 16 little-endian bytes.
func (e *Encoder) EncodeInt128(lo uint64, hi int64) {
	prev := len(e.buf)
	e.buf = encoding.EncodeInt128(e.buf, lo, hi)
	e.checkLimit(prev)
}

// EncodeBool appends 0x01 for true, 0x00 for false.
func (e *Encoder) EncodeBool(x bool) {
	prev := len(e.buf)
	e.buf = encoding.EncodeBool(e.buf, x)
	e.checkLimit(prev)
}

// EncodeCompact appends the compact encoding of n, using the smallest of
// the four compact modes that fits.
func (e *Encoder) EncodeCompact(n uint64) {
	prev := len(e.buf)
	e.buf = encoding.EncodeCompact(e.buf, n)
	e.checkLimit(prev)
}

// EncodeOption appends the presence tag of an Option: 0x01 if present,
// 0x00 otherwise. When present is true the caller encodes the payload
// right after. Options of bool must use EncodeOptionBool instead.
func (e *Encoder) EncodeOption(present bool) {
	prev := len(e.buf)
	e.buf = encoding.EncodeOptionTag(e.buf, present)
	e.checkLimit(prev)
}

// EncodeOptionBool appends the single-byte packing of Option<bool>:
// 0x00 absent, 0x01 present false, 0x02 present true. No payload follows.
func (e *Encoder) EncodeOptionBool(present, value bool) {
	prev := len(e.buf)
	e.buf = encoding.EncodeOptionBool(e.buf, present, value)
	e.checkLimit(prev)
}

// EncodeVariant appends the single-byte index of the variant being encoded
// among total variants. The caller encodes the variant payload, if any,
// right after. Types with more than 256 variants cannot be represented.
func (e *Encoder) EncodeVariant(index, total int) error {
	prev := len(e.buf)
	buf, err := encoding.EncodeVariantIndex(e.buf, index, total)
	if err != nil {
		return err
	}
	e.buf = buf
	e.checkLimit(prev)
	return nil
}

// EncodeLen appends the compact-encoded element count of a variable-length
// sequence or map. The caller encodes each element right after. Fixed-size
// sequences carry no count and need no call.
func (e *Encoder) EncodeLen(n int) error {
	if n < 0 {
		return errors.Errorf("negative length %d", n)
	}
	prev := len(e.buf)
	e.buf = encoding.EncodeCompact(e.buf, uint64(n))
	e.checkLimit(prev)
	return nil
}

// EncodeString appends the compact-encoded byte length of s followed by
// its raw bytes. The codec treats s as opaque bytes; UTF-8 validity is the
// caller's concern.
func (e *Encoder) EncodeString(s string) {
	prev := len(e.buf)
	e.buf = slices.Grow(e.buf, encoding.CompactLen(uint64(len(s)))+len(s))
	e.buf = encoding.EncodeCompact(e.buf, uint64(len(s)))
	e.buf = append(e.buf, s...)
	e.checkLimit(prev)
}

// EncodeBytes appends the compact-encoded length of b followed by its
// raw bytes.
func (e *Encoder) EncodeBytes(b []byte) {
	prev := len(e.buf)
	e.buf = slices.Grow(e.buf, encoding.CompactLen(uint64(len(b)))+len(b))
	e.buf = encoding.EncodeCompact(e.buf, uint64(len(b)))
	e.buf = append(e.buf, b...)
	e.checkLimit(prev)
}

// EncodeRune appends the code point of r as a u32. It fails if r is not a
// valid Unicode scalar value.
func (e *Encoder) EncodeRune(r rune) error {
	prev := len(e.buf)
	buf, err := encoding.EncodeRune(e.buf, r)
	if err != nil {
		return err
	}
	e.buf = buf
	e.checkLimit(prev)
	return nil
}
