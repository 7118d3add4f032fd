// Package compress provides block-level compression codecs for logpack
// output buffers.
//
// Logpack applies a two-stage compression strategy:
//
//  1. **Record compression**: the engine delta-compresses every record's
//     header and arguments as it drains staging buffers (see the encoding
//     and codec packages). This exploits per-record structure.
//  2. **Block compression**: optionally, each filled output buffer is run
//     through a general-purpose codec before it is framed and written.
//     This exploits redundancy across records.
//
// This package implements the second stage. It is off by default: record
// compression already removes most redundancy, and skipping the block
// codec keeps the write path cheap. Enable it for archival workloads where
// bytes on disk matter more than CPU.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone)
//
// Pass-through. The default, and the fallback frame codec when a real
// codec fails to shrink a block.
//
// **Zstandard** (format.CompressionZstd)
//
// Best ratio of the built-in codecs. cgo builds bind libzstd; pure-Go
// builds use the native port. Best for cold storage and shipping logs over
// constrained links.
//
// **S2** (format.CompressionS2)
//
// Fastest real codec. Embeds the decoded length, so decompression sizes
// its output exactly. Best when the engine must keep up with bursty
// producers while still saving some bytes.
//
// **LZ4** (format.CompressionLZ4)
//
// Middle ground: better ratios than S2 on record streams with repeated
// format ids and argument prefixes, cheaper than Zstd.
//
// # Algorithm Selection Guide
//
// | Workload                  | Recommended | Reason                       |
// |---------------------------|-------------|------------------------------|
// | Latency-sensitive logging | None        | No extra CPU on the hot path |
// | Bursty producers          | S2          | Fast enough to stay ahead    |
// | Archival / cold storage   | Zstd        | Smallest files               |
// | Read-heavy analysis       | LZ4         | Fastest decompression        |
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Zstd and LZ4 pool
// their encoder state internally; NoOp and S2 are stateless.
//
// # Integration with the Engine
//
// The engine package uses this package internally. Configure block
// compression via engine options:
//
//	eng, err := engine.New("app.lpk", buffers, codecs,
//	    engine.WithBlockCompression(format.CompressionZstd),
//	)
//
// Each compressed block is framed by a section.BlockHeader recording the
// codec, the raw and compressed lengths, and a checksum, so readers detect
// the right decompressor from the stream itself.
package compress
