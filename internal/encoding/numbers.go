package encoding

// Fixed-width integers are raw little-endian bytes of the declared width.
// Signed values are written as their two's complement bytes, so the signed
// variants delegate to the unsigned ones.

func EncodeUint8(dst []byte, n uint8) []byte {
	return append(dst, n)
}

func EncodeUint16(dst []byte, n uint16) []byte {
	return append(dst, byte(n), byte(n>>8))
}

func EncodeUint32(dst []byte, n uint32) []byte {
	return append(dst, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
}

func EncodeUint64(dst []byte, n uint64) []byte {
	return append(
		dst,
		byte(n),
		byte(n>>8),
		byte(n>>16),
		byte(n>>24),
		byte(n>>32),
		byte(n>>40),
		byte(n>>48),
		byte(n>>56),
	)
}

// EncodeUint128 appends the 16-byte little-endian encoding of the 128-bit
// value hi<<64 | lo.
func EncodeUint128(dst []byte, lo, hi uint64) []byte {
	dst = EncodeUint64(dst, lo)
	return EncodeUint64(dst, hi)
}

func EncodeInt8(dst []byte, n int8) []byte {
	return EncodeUint8(dst, uint8(n))
}

func EncodeInt16(dst []byte, n int16) []byte {
	return EncodeUint16(dst, uint16(n))
}

func EncodeInt32(dst []byte, n int32) []byte {
	return EncodeUint32(dst, uint32(n))
}

func EncodeInt64(dst []byte, n int64) []byte {
	return EncodeUint64(dst, uint64(n))
}

func EncodeInt128(dst []byte, lo uint64, hi int64) []byte {
	return EncodeUint128(dst, lo, uint64(hi))
}

func DecodeUint8(b []byte) (uint8, int, error) {
	if len(b) < 1 {
		return 0, 0, ErrUnexpectedEnd
	}
	return b[0], 1, nil
}

func DecodeUint16(b []byte) (uint16, int, error) {
	if len(b) < 2 {
		return 0, 0, ErrUnexpectedEnd
	}
	return uint16(b[0]) | uint16(b[1])<<8, 2, nil
}

func DecodeUint32(b []byte) (uint32, int, error) {
	if len(b) < 4 {
		return 0, 0, ErrUnexpectedEnd
	}
	x := uint32(b[0]) |
		uint32(b[1])<<8 |
		uint32(b[2])<<16 |
		uint32(b[3])<<24
	return x, 4, nil
}

func DecodeUint64(b []byte) (uint64, int, error) {
	if len(b) < 8 {
		return 0, 0, ErrUnexpectedEnd
	}
	x := uint64(b[0]) |
		uint64(b[1])<<8 |
		uint64(b[2])<<16 |
		uint64(b[3])<<24 |
		uint64(b[4])<<32 |
		uint64(b[5])<<40 |
		uint64(b[6])<<48 |
		uint64(b[7])<<56
	return x, 8, nil
}

func DecodeUint128(b []byte) (lo, hi uint64, n int, err error) {
	if len(b) < 16 {
		return 0, 0, 0, ErrUnexpectedEnd
	}
	lo, _, _ = DecodeUint64(b)
	hi, _, _ = DecodeUint64(b[8:])
	return lo, hi, 16, nil
}

func DecodeInt8(b []byte) (int8, int, error) {
	x, n, err := DecodeUint8(b)
	return int8(x), n, err
}

func DecodeInt16(b []byte) (int16, int, error) {
	x, n, err := DecodeUint16(b)
	return int16(x), n, err
}

func DecodeInt32(b []byte) (int32, int, error) {
	x, n, err := DecodeUint32(b)
	return int32(x), n, err
}

func DecodeInt64(b []byte) (int64, int, error) {
	x, n, err := DecodeUint64(b)
	return int64(x), n, err
}

func DecodeInt128(b []byte) (lo uint64, hi int64, n int, err error) {
	lo, h, n, err := DecodeUint128(b)
	return lo, int64(h), n, err
}
