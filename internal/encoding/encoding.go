package encoding

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// One-byte tags used by booleans and options.
const (
	falseByte      = 0x00
	trueByte       = 0x01
	optionNone     = 0x00
	optionSome     = 0x01
	optionBoolNone = 0x00
	// Option<bool> is packed in a single byte instead of tag + payload.
	optionBoolFalse = 0x01
	optionBoolTrue  = 0x02
)

// MaxVariants is the number of variants addressable by the single-byte
// variant index. Types with more variants cannot be represented.
const MaxVariants = 256

func EncodeBool(dst []byte, x bool) []byte {
	if x {
		return append(dst, trueByte)
	}
	return append(dst, falseByte)
}

func DecodeBool(b []byte) (bool, int, error) {
	if len(b) == 0 {
		return false, 0, ErrUnexpectedEnd
	}
	switch b[0] {
	case falseByte:
		return false, 1, nil
	case trueByte:
		return true, 1, nil
	}
	return false, 0, errors.Wrapf(ErrInvalidBool, "0x%02x", b[0])
}

// EncodeOptionTag appends the presence tag of a general Option. The payload,
// if any, is appended by the caller.
func EncodeOptionTag(dst []byte, present bool) []byte {
	if present {
		return append(dst, optionSome)
	}
	return append(dst, optionNone)
}

func DecodeOptionTag(b []byte) (bool, int, error) {
	if len(b) == 0 {
		return false, 0, ErrUnexpectedEnd
	}
	switch b[0] {
	case optionNone:
		return false, 1, nil
	case optionSome:
		return true, 1, nil
	}
	return false, 0, errors.Wrapf(ErrInvalidOption, "0x%02x", b[0])
}

func EncodeOptionBool(dst []byte, present, value bool) []byte {
	switch {
	case !present:
		return append(dst, optionBoolNone)
	case value:
		return append(dst, optionBoolTrue)
	default:
		return append(dst, optionBoolFalse)
	}
}

func DecodeOptionBool(b []byte) (present, value bool, n int, err error) {
	if len(b) == 0 {
		return false, false, 0, ErrUnexpectedEnd
	}
	switch b[0] {
	case optionBoolNone:
		return false, false, 1, nil
	case optionBoolFalse:
		return true, false, 1, nil
	case optionBoolTrue:
		return true, true, 1, nil
	}
	return false, false, 0, errors.Wrapf(ErrInvalidOptionBool, "0x%02x", b[0])
}

// EncodeVariantIndex appends the single-byte index of a variant among total.
func EncodeVariantIndex(dst []byte, index, total int) ([]byte, error) {
	if total > MaxVariants {
		return nil, errors.Wrapf(ErrVariantIndexOutOfRange, "%d variants", total)
	}
	if index < 0 || index >= total {
		return nil, errors.Wrapf(ErrVariantIndexOutOfRange, "index %d of %d", index, total)
	}
	return append(dst, byte(index)), nil
}

func DecodeVariantIndex(b []byte, total int) (int, int, error) {
	if total > MaxVariants {
		return 0, 0, errors.Wrapf(ErrVariantIndexOutOfRange, "%d variants", total)
	}
	if len(b) == 0 {
		return 0, 0, ErrUnexpectedEnd
	}
	index := int(b[0])
	if index >= total {
		return 0, 0, errors.Wrapf(ErrVariantIndexOutOfRange, "index %d of %d", index, total)
	}
	return index, 1, nil
}

// EncodeRune appends the code point of r as a u32.
func EncodeRune(dst []byte, r rune) ([]byte, error) {
	if !utf8.ValidRune(r) {
		return nil, errors.Wrapf(ErrInvalidRune, "%#U", r)
	}
	return EncodeUint32(dst, uint32(r)), nil
}

func DecodeRune(b []byte) (rune, int, error) {
	x, n, err := DecodeUint32(b)
	if err != nil {
		return 0, 0, err
	}
	r := rune(x)
	if !utf8.ValidRune(r) {
		return 0, 0, errors.Wrapf(ErrInvalidRune, "code point 0x%x", x)
	}
	return r, n, nil
}
