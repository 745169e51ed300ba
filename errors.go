package scale

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/scale/internal/encoding"
)

// The error kinds of the codec form a closed set. All of them are matched
// with errors.Is; failures abort the encode or decode call immediately and
// no partial result is returned.
var (
	ErrUnexpectedEnd          = encoding.ErrUnexpectedEnd
	ErrInvalidBool            = encoding.ErrInvalidBool
	ErrInvalidOption          = encoding.ErrInvalidOption
	ErrInvalidOptionBool      = encoding.ErrInvalidOptionBool
	ErrInvalidCompactInt      = encoding.ErrInvalidCompactInt
	ErrVariantIndexOutOfRange = encoding.ErrVariantIndexOutOfRange
	ErrInvalidRune            = encoding.ErrInvalidRune

	// ErrTrailingBytes is returned by Unmarshal when input bytes remain
	// after the value has been decoded.
	ErrTrailingBytes = errors.New("trailing bytes after value")

	// ErrOutputLimitExceeded is returned when an encoder configured with a
	// size limit would grow its buffer past it.
	ErrOutputLimitExceeded = errors.New("output size limit exceeded")
)
