package compress

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logpack/errs"
	"github.com/arloliu/logpack/format"
)

// makeRecordStream builds a payload shaped like a drained output buffer:
// runs of varint metadata followed by small argument values, with heavy
// repetition across records.
func makeRecordStream(records int) []byte {
	buf := make([]byte, 0, records*16)
	for i := range records {
		buf = binary.AppendUvarint(buf, uint64(i%8))       // format id delta
		buf = binary.AppendUvarint(buf, uint64(100+i%50))  // timestamp delta
		buf = binary.AppendUvarint(buf, uint64(i%3))       // small counter arg
		buf = append(buf, "GET /api/v1/items"[:12+i%5]...) // shared path prefix
	}

	return buf
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := makeRecordStream(1000)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecs_ShrinkRecordStream(t *testing.T) {
	payload := makeRecordStream(4000)

	for _, typ := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload),
				"record streams repeat format ids and prefixes, every real codec should shrink them")
		})
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Same(t, &payload[0], &compressed[0], "no-op must not copy")

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &payload[0], &restored[0])
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionZstd, "block frame")
	require.NoError(t, err)
	require.IsType(t, ZstdCompressor{}, codec)

	codec, err = CreateCodec(format.CompressionNone, "block frame")
	require.NoError(t, err)
	require.IsType(t, NoOpCompressor{}, codec)

	_, err = CreateCodec(format.CompressionType(0xEE), "block frame")
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	require.ErrorContains(t, err, "block frame")
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestZstd_CorruptedInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01})
	require.Error(t, err)
}

func TestS2_CorruptedInput(t *testing.T) {
	codec := NewS2Compressor()

	_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}
