package encoding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/scale/internal/encoding"
)

func TestEncodeDecodeCompact(t *testing.T) {
	tests := []struct {
		input uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x04}},
		{42, []byte{0xA8}},
		{63, []byte{0xFC}},
		{64, []byte{0x01, 0x01}},
		{69, []byte{0x15, 0x01}},
		{16383, []byte{0xFD, 0xFF}},
		{16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{1 << 20, []byte{0x02, 0x00, 0x40, 0x00}},
		{1<<30 - 1, []byte{0xFE, 0xFF, 0xFF, 0xFF}},
		{1 << 30, []byte{0x03, 0x00, 0x00, 0x00, 0x40}},
		{1<<32 - 1, []byte{0x03, 0xFF, 0xFF, 0xFF, 0xFF}},
		{1 << 32, []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{1 << 40, []byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{1 << 48, []byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{math.MaxUint64, []byte{0x13, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.input), func(t *testing.T) {
			got := encoding.EncodeCompact(nil, test.input)
			require.Equal(t, test.want, got)
			require.Equal(t, len(test.want), encoding.CompactLen(test.input))

			x, n, err := encoding.DecodeCompact(got)
			require.NoError(t, err)
			require.Equal(t, test.input, x)
			require.Equal(t, len(test.want), n)
		})
	}
}

func TestDecodeCompactLenient(t *testing.T) {
	// The decoder accepts values encoded with a larger mode than needed.
	tests := []struct {
		input []byte
		want  uint64
	}{
		{[]byte{0x05, 0x00}, 1},
		{[]byte{0x06, 0x00, 0x00, 0x00}, 1},
		{[]byte{0x03, 0x01, 0x00, 0x00, 0x00}, 1},
		{[]byte{0x07, 0x40, 0x00, 0x00, 0x00, 0x00}, 64},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("% x", test.input), func(t *testing.T) {
			x, n, err := encoding.DecodeCompact(test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, x)
			require.Equal(t, len(test.input), n)
		})
	}
}

func TestDecodeCompactMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", nil, encoding.ErrUnexpectedEnd},
		{"two byte mode truncated", []byte{0x01}, encoding.ErrUnexpectedEnd},
		{"four byte mode truncated", []byte{0x02, 0x00, 0x01}, encoding.ErrUnexpectedEnd},
		{"big mode truncated", []byte{0x03, 0x00, 0x00}, encoding.ErrUnexpectedEnd},
		{"big mode header only", []byte{0x13}, encoding.ErrUnexpectedEnd},
		{"big mode 9 bytes", []byte{0x17, 0, 0, 0, 0, 0, 0, 0, 0, 1}, encoding.ErrInvalidCompactInt},
		{"big mode 67 bytes", []byte{0xFF}, encoding.ErrInvalidCompactInt},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := encoding.DecodeCompact(test.input)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestEncodeCompactTruncation(t *testing.T) {
	// Dropping the last byte of any valid encoding must be detected.
	for _, x := range []uint64{64, 16383, 16384, 1<<30 - 1, 1 << 30, 1 << 40, math.MaxUint64} {
		t.Run(fmt.Sprintf("%d", x), func(t *testing.T) {
			b := encoding.EncodeCompact(nil, x)
			_, _, err := encoding.DecodeCompact(b[:len(b)-1])
			require.ErrorIs(t, err, encoding.ErrUnexpectedEnd)
		})
	}
}
