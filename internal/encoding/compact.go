package encoding

// Compact integers are encoded with a mode tag in the low 2 bits of the
// first byte:
//
//	00: value in [0, 2^6),   1 byte,  value<<2
//	01: value in [0, 2^14),  2 bytes little-endian, value<<2 | 0b01
//	10: value in [0, 2^30),  4 bytes little-endian, value<<2 | 0b10
//	11: big-integer mode: first byte is (len-4)<<2 | 0b11, followed by
//	    len little-endian bytes holding the value, 4 <= len <= 8.
//
// The encoder always picks the smallest mode that fits. The decoder is
// lenient: it accepts values encoded with a larger mode than necessary.
const (
	compactModeMask   = 0b11
	compactModeSingle = 0b00
	compactModeTwo    = 0b01
	compactModeFour   = 0b10
	compactModeBig    = 0b11

	// MaxCompactBigLen is the largest big-integer mode payload this codec
	// supports. Values are capped at 64 bits.
	MaxCompactBigLen = 8
)

// EncodeCompact appends the compact encoding of n to dst.
func EncodeCompact(dst []byte, n uint64) []byte {
	switch {
	case n < 1<<6:
		return append(dst, byte(n)<<2)
	case n < 1<<14:
		x := uint16(n)<<2 | compactModeTwo
		return append(dst, byte(x), byte(x>>8))
	case n < 1<<30:
		x := uint32(n)<<2 | compactModeFour
		return append(dst, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
	default:
		l := 4
		for n>>(8*uint(l)) != 0 {
			l++
		}
		dst = append(dst, byte(l-4)<<2|compactModeBig)
		for i := 0; i < l; i++ {
			dst = append(dst, byte(n>>(8*uint(i))))
		}
		return dst
	}
}

// DecodeCompact reads a compact integer from the start of b and returns it
// along with the number of bytes read.
func DecodeCompact(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrUnexpectedEnd
	}

	switch b[0] & compactModeMask {
	case compactModeSingle:
		return uint64(b[0] >> 2), 1, nil
	case compactModeTwo:
		if len(b) < 2 {
			return 0, 0, ErrUnexpectedEnd
		}
		x := uint64(b[0]) | uint64(b[1])<<8
		return x >> 2, 2, nil
	case compactModeFour:
		if len(b) < 4 {
			return 0, 0, ErrUnexpectedEnd
		}
		x := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24
		return x >> 2, 4, nil
	}

	l := int(b[0]>>2) + 4
	if l > MaxCompactBigLen {
		return 0, 0, ErrInvalidCompactInt
	}
	if len(b) < 1+l {
		return 0, 0, ErrUnexpectedEnd
	}

	var x uint64
	for i := 0; i < l; i++ {
		x |= uint64(b[1+i]) << (8 * uint(i))
	}
	return x, 1 + l, nil
}

// CompactLen returns the number of bytes EncodeCompact writes for n.
func CompactLen(n uint64) int {
	switch {
	case n < 1<<6:
		return 1
	case n < 1<<14:
		return 2
	case n < 1<<30:
		return 4
	default:
		l := 4
		for n>>(8*uint(l)) != 0 {
			l++
		}
		return 1 + l
	}
}
