package compress

import (
	"testing"

	"github.com/arloliu/logpack/format"
)

// Payload sized like one filled output buffer worth of compressed records.
var benchPayload = makeRecordStream(16 * 1024 / 16)

func benchmarkCompress(b *testing.B, typ format.CompressionType) {
	codec, err := GetCodec(typ)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(benchPayload)))
	b.ResetTimer()
	for range b.N {
		if _, err := codec.Compress(benchPayload); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDecompress(b *testing.B, typ format.CompressionType) {
	codec, err := GetCodec(typ)
	if err != nil {
		b.Fatal(err)
	}
	compressed, err := codec.Compress(benchPayload)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(benchPayload)))
	b.ResetTimer()
	for range b.N {
		if _, err := codec.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompress_NoOp(b *testing.B) { benchmarkCompress(b, format.CompressionNone) }
func BenchmarkCompress_Zstd(b *testing.B) { benchmarkCompress(b, format.CompressionZstd) }
func BenchmarkCompress_S2(b *testing.B)   { benchmarkCompress(b, format.CompressionS2) }
func BenchmarkCompress_LZ4(b *testing.B)  { benchmarkCompress(b, format.CompressionLZ4) }

func BenchmarkDecompress_NoOp(b *testing.B) { benchmarkDecompress(b, format.CompressionNone) }
func BenchmarkDecompress_Zstd(b *testing.B) { benchmarkDecompress(b, format.CompressionZstd) }
func BenchmarkDecompress_S2(b *testing.B)   { benchmarkDecompress(b, format.CompressionS2) }
func BenchmarkDecompress_LZ4(b *testing.B)  { benchmarkDecompress(b, format.CompressionLZ4) }
