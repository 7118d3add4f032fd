package encoding

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logpack/errs"
)

func TestZigZagRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 63, -64, 1000000, -1000000, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		require.Equal(t, v, ZigZagDecode(ZigZagEncode(v)), "value %d", v)
	}
}

func TestZigZagSmallMagnitudes(t *testing.T) {
	// Small magnitudes in either direction must stay single-byte varints.
	for _, v := range []int64{0, 1, -1, 31, -32, 63} {
		encoded := binary.AppendUvarint(nil, ZigZagEncode(v))
		require.Len(t, encoded, 1, "value %d", v)
	}
}

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		data := binary.AppendUvarint(nil, v)
		decoded, n, err := Uvarint(data)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, len(data), n)
	}
}

func TestUvarintTruncated(t *testing.T) {
	_, _, err := Uvarint(nil)
	require.ErrorIs(t, err, errs.ErrInvalidVarint)

	data := binary.AppendUvarint(nil, math.MaxUint64)
	_, _, err = Uvarint(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrInvalidVarint)
}

func TestUvarintOverflow(t *testing.T) {
	// Eleven continuation bytes overflow a 64-bit value.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	_, _, err := Uvarint(data)
	require.ErrorIs(t, err, errs.ErrInvalidVarint)
}
