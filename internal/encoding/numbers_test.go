package encoding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/scale/internal/encoding"
)

func TestEncodeDecodeUint(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		got := encoding.EncodeUint8(nil, 0xAB)
		require.Equal(t, []byte{0xAB}, got)

		x, n, err := encoding.DecodeUint8(got)
		require.NoError(t, err)
		require.Equal(t, uint8(0xAB), x)
		require.Equal(t, 1, n)
	})

	t.Run("uint16", func(t *testing.T) {
		got := encoding.EncodeUint16(nil, 0x1234)
		require.Equal(t, []byte{0x34, 0x12}, got)

		x, n, err := encoding.DecodeUint16(got)
		require.NoError(t, err)
		require.Equal(t, uint16(0x1234), x)
		require.Equal(t, 2, n)
	})

	t.Run("uint32", func(t *testing.T) {
		got := encoding.EncodeUint32(nil, 0xDEADBEEF)
		require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, got)

		x, n, err := encoding.DecodeUint32(got)
		require.NoError(t, err)
		require.Equal(t, uint32(0xDEADBEEF), x)
		require.Equal(t, 4, n)
	})

	t.Run("uint64", func(t *testing.T) {
		got := encoding.EncodeUint64(nil, 0x0102030405060708)
		require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, got)

		x, n, err := encoding.DecodeUint64(got)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0102030405060708), x)
		require.Equal(t, 8, n)
	})

	t.Run("uint128", func(t *testing.T) {
		got := encoding.EncodeUint128(nil, 1, 2)
		require.Equal(t, []byte{
			0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		}, got)

		lo, hi, n, err := encoding.DecodeUint128(got)
		require.NoError(t, err)
		require.Equal(t, uint64(1), lo)
		require.Equal(t, uint64(2), hi)
		require.Equal(t, 16, n)
	})
}

func TestEncodeDecodeInt(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		for _, x := range []int8{math.MinInt8, -1, 0, 3, math.MaxInt8} {
			got := encoding.EncodeInt8(nil, x)
			require.Len(t, got, 1)

			y, n, err := encoding.DecodeInt8(got)
			require.NoError(t, err)
			require.Equal(t, x, y)
			require.Equal(t, 1, n)
		}

		// -1 is all ones in two's complement.
		require.Equal(t, []byte{0xFF}, encoding.EncodeInt8(nil, -1))
		require.Equal(t, []byte{0x03}, encoding.EncodeInt8(nil, 3))
	})

	t.Run("int16", func(t *testing.T) {
		require.Equal(t, []byte{0xFF, 0xFF}, encoding.EncodeInt16(nil, -1))

		for _, x := range []int16{math.MinInt16, -256, 0, 255, math.MaxInt16} {
			y, n, err := encoding.DecodeInt16(encoding.EncodeInt16(nil, x))
			require.NoError(t, err)
			require.Equal(t, x, y)
			require.Equal(t, 2, n)
		}
	})

	t.Run("int32", func(t *testing.T) {
		require.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF}, encoding.EncodeInt32(nil, -2))

		for _, x := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
			y, n, err := encoding.DecodeInt32(encoding.EncodeInt32(nil, x))
			require.NoError(t, err)
			require.Equal(t, x, y)
			require.Equal(t, 4, n)
		}
	})

	t.Run("int64", func(t *testing.T) {
		for _, x := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
			y, n, err := encoding.DecodeInt64(encoding.EncodeInt64(nil, x))
			require.NoError(t, err)
			require.Equal(t, x, y)
			require.Equal(t, 8, n)
		}
	})

	t.Run("int128", func(t *testing.T) {
		// -1 as 128-bit two's complement is 16 0xFF bytes.
		got := encoding.EncodeInt128(nil, math.MaxUint64, -1)
		require.Equal(t, []byte{
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		}, got)

		lo, hi, n, err := encoding.DecodeInt128(got)
		require.NoError(t, err)
		require.Equal(t, uint64(math.MaxUint64), lo)
		require.Equal(t, int64(-1), hi)
		require.Equal(t, 16, n)
	})
}

func TestDecodeNumberTruncated(t *testing.T) {
	tests := []struct {
		name  string
		width int
		fn    func([]byte) error
	}{
		{"uint16", 2, func(b []byte) error { _, _, err := encoding.DecodeUint16(b); return err }},
		{"uint32", 4, func(b []byte) error { _, _, err := encoding.DecodeUint32(b); return err }},
		{"uint64", 8, func(b []byte) error { _, _, err := encoding.DecodeUint64(b); return err }},
		{"uint128", 16, func(b []byte) error { _, _, _, err := encoding.DecodeUint128(b); return err }},
		{"int64", 8, func(b []byte) error { _, _, err := encoding.DecodeInt64(b); return err }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for i := 0; i < test.width; i++ {
				require.ErrorIs(t, test.fn(make([]byte, i)), encoding.ErrUnexpectedEnd)
			}
		})
	}

	_, _, err := encoding.DecodeUint8(nil)
	require.ErrorIs(t, err, encoding.ErrUnexpectedEnd)
}

func BenchmarkEncodeCompact(b *testing.B) {
	for _, x := range []uint64{60, 16000, 1 << 20, 1 << 40} {
		b.Run(fmt.Sprintf("%d", x), func(b *testing.B) {
			var buf []byte
			for i := 0; i < b.N; i++ {
				buf = encoding.EncodeCompact(buf[:0], x)
			}
		})
	}
}

func BenchmarkDecodeCompact(b *testing.B) {
	for _, x := range []uint64{60, 16000, 1 << 20, 1 << 40} {
		b.Run(fmt.Sprintf("%d", x), func(b *testing.B) {
			buf := encoding.EncodeCompact(nil, x)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _, _ = encoding.DecodeCompact(buf)
			}
		})
	}
}
