package compress

// ZstdCompressor wraps Zstandard compression, the highest-ratio codec
// available for block frames.
//
// It suits deployments that write logs once and ship them to cold storage:
// the extra CPU per block buys the smallest files. Two implementations back
// the same type, selected at build time: cgo builds use the libzstd
// bindings, pure-Go builds fall back to the native port.
//
// Performance characteristics:
//   - Compression: slower than S2 and LZ4 at every level
//   - Decompression: fast, typically 2-5x faster than compression
//   - Compression ratio: best of the built-in codecs on record streams
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
