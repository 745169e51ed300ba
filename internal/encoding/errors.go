package encoding

import "github.com/cockroachdb/errors"

// Decoding failures form a closed set. Each sentinel is matched with
// errors.Is; callsites wrap them with position information.
var (
	// ErrUnexpectedEnd is returned when the input ends before a rule's
	// required bytes are available.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrInvalidBool is returned when a boolean byte is neither 0x00 nor 0x01.
	ErrInvalidBool = errors.New("invalid boolean byte")

	// ErrInvalidOption is returned when an option tag byte is neither
	// 0x00 nor 0x01.
	ErrInvalidOption = errors.New("invalid option tag")

	// ErrInvalidOptionBool is returned when an option-of-bool byte is not
	// one of 0x00, 0x01 or 0x02.
	ErrInvalidOptionBool = errors.New("invalid option<bool> byte")

	// ErrInvalidCompactInt is returned when a compact integer header
	// declares a width this codec cannot represent.
	ErrInvalidCompactInt = errors.New("invalid compact integer")

	// ErrVariantIndexOutOfRange is returned when a variant index doesn't
	// fit in one byte, or when a decoded index is not below the declared
	// variant count.
	ErrVariantIndexOutOfRange = errors.New("variant index out of range")

	// ErrInvalidRune is returned when a decoded code point is not a valid
	// Unicode scalar value.
	ErrInvalidRune = errors.New("invalid rune")
)
