// Package logpack provides the persistence tail of a high-throughput
// logging pipeline: a single background engine that drains per-producer
// staging buffers of raw binary log records, compresses them into a dense
// delta-encoded stream, and writes that stream to durable storage with
// double-buffered asynchronous I/O so producers never stall on disk
// latency.
//
// # Core Features
//
//   - Per-producer staging buffers with a lock-light peek/consume contract
//   - Round-robin draining, so a busy producer cannot starve a quiet one
//   - Delta compression of record metadata (format id, timestamp)
//   - Pluggable per-format argument codecs (Raw passthrough, typed Schema)
//   - Two fixed output buffers, at most one asynchronous write in flight
//   - Optional direct I/O with 512-byte sector alignment
//   - Optional second-stage block compression (Zstd, S2, LZ4)
//   - Flush-on-demand and graceful shutdown with a statistics report
//
// # Basic Usage
//
// Wiring producers to an engine:
//
//	import (
//	    "github.com/arloliu/logpack"
//	    "github.com/arloliu/logpack/codec"
//	    "github.com/arloliu/logpack/endian"
//	)
//
//	const fmtRequest uint32 = 1
//
//	// Register one codec per record format.
//	codecs := logpack.NewCodecRegistry()
//	codecs.Register(fmtRequest, codec.NewSchema(endian.GetLittleEndianEngine(),
//	    codec.KindUint32, codec.KindUint64, codec.KindString))
//
//	// Each producer owns one staging buffer.
//	buffers := logpack.NewStagingRegistry()
//	buf, _ := logpack.NewMemBuffer(64 * 1024)
//	handle := buffers.Register(buf)
//	defer handle.Deregister()
//
//	// One engine drains every registered buffer into the destination file.
//	eng, err := logpack.NewDefault("/var/log/app.lpk", buffers, codecs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Hot path: producers append records without touching the disk.
//	buf.AppendRecord(endian.GetLittleEndianEngine(), fmtRequest, ts, args, metaBytes)
//
//	eng.Sync()  // block until everything staged so far is persisted
//	eng.Close() // drain, flush to stable storage, log the statistics report
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the engine,
// staging, and codec packages, simplifying the most common use cases. For
// advanced usage — custom staging buffer implementations, direct access to
// the record and block layouts, or standalone block compression — use the
// engine, staging, codec, section, and compress packages directly.
package logpack

import (
	"github.com/arloliu/logpack/codec"
	"github.com/arloliu/logpack/engine"
	"github.com/arloliu/logpack/format"
	"github.com/arloliu/logpack/staging"
)

var defaultEngineOptions = []engine.Option{
	engine.WithLittleEndian(),
	engine.WithBufferSize(engine.DefaultBufferSize),
	engine.WithDirectIO(false),
	engine.WithBlockCompression(format.CompressionNone),
	engine.WithSyncOnClose(true),
}

// New creates a persistence engine with custom options and starts its
// background goroutine.
//
// This is the most flexible factory function, allowing full control over
// buffering, alignment, compression, and diagnostics. Use this when you
// need direct I/O, block compression, or non-default buffer sizing.
//
// Parameters:
//   - path: destination file, opened in write-append mode (created if absent)
//   - buffers: staging registry the engine sweeps; must outlive the engine
//   - codecs: format id → codec registry, populated before any producer runs
//   - opts: optional configuration functions (see engine.Option)
//
// Returns:
//   - *engine.Engine: the running engine.
//   - error: an error if the configuration is invalid or the file cannot
//     be opened.
//
// Available options:
//   - engine.WithBufferSize(n)
//   - engine.WithPollInterval(d)
//   - engine.WithDirectIO(true|false)
//   - engine.WithBlockCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - engine.WithLittleEndian() / engine.WithBigEndian()
//   - engine.WithLogger(logger)
//   - engine.WithSyncOnClose(true|false)
//
// Example:
//
//	eng, err := logpack.New("/var/log/app.lpk", buffers, codecs,
//	    engine.WithDirectIO(true),
//	    engine.WithBlockCompression(format.CompressionZstd),
//	)
func New(path string, buffers *staging.Registry, codecs *codec.Registry, opts ...engine.Option) (*engine.Engine, error) {
	return engine.New(path, buffers, codecs, opts...)
}

// NewDefault creates a persistence engine with recommended default settings.
//
// This is the recommended factory function for most use cases. It uses:
//   - Little-endian byte order (native on x86/x64/ARM)
//   - 1 MiB output buffers (holds thousands of typical records per write)
//   - Buffered I/O without sector alignment
//   - No block compression (delta encoding already shrinks the stream)
//   - Flush to stable storage on Close
//
// Use this when:
//   - You want sensible behavior without manual tuning
//   - Your destination is a regular file on a buffered filesystem
//   - Per-record delta compression is enough
//
// For sector-aligned direct writes or block-compressed output, use New
// with explicit options instead.
//
// Parameters:
//   - path: destination file, opened in write-append mode (created if absent)
//   - buffers: staging registry the engine sweeps; must outlive the engine
//   - codecs: format id → codec registry, populated before any producer runs
//
// Returns:
//   - *engine.Engine: the running engine.
//   - error: an error if the file cannot be opened.
//
// Example:
//
//	eng, err := logpack.NewDefault("/var/log/app.lpk", buffers, codecs)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDefault(path string, buffers *staging.Registry, codecs *codec.Registry) (*engine.Engine, error) {
	return engine.New(path, buffers, codecs, defaultEngineOptions...)
}

// NewStagingRegistry creates an empty staging buffer registry.
//
// The registry is the shared object producers register with and the engine
// sweeps; it must outlive every producer and the engine itself. One
// registry typically serves one engine.
//
// Returns:
//   - *staging.Registry: registry with no buffers registered.
func NewStagingRegistry() *staging.Registry {
	return staging.NewRegistry()
}

// NewMemBuffer creates an in-memory staging buffer holding up to size
// bytes of staged records.
//
// Size the buffer for the producer's burst rate: it must absorb every
// record staged between two engine sweeps. 64 KiB holds several hundred
// typical records.
//
// Parameters:
//   - size: buffer capacity in bytes, must be positive
//
// Returns:
//   - *staging.MemBuffer: the created buffer.
//   - error: an error if size is not positive.
//
// Example:
//
//	buf, err := logpack.NewMemBuffer(64 * 1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handle := buffers.Register(buf)
//	defer handle.Deregister()
func NewMemBuffer(size int) (*staging.MemBuffer, error) {
	return staging.NewMemBuffer(size)
}

// NewCodecRegistry creates an empty codec registry.
//
// Register a codec for every format id producers will stamp into record
// headers, before the engine starts. The registry is read-only once the
// engine runs; a staged record whose format id has no codec panics the
// engine, because a record of unknown layout cannot be skipped safely.
//
// Returns:
//   - *codec.Registry: registry with no formats registered.
//
// Example:
//
//	codecs := logpack.NewCodecRegistry()
//	codecs.Register(fmtMessage, codec.NewRaw())
//	codecs.Register(fmtMetric, codec.NewSchema(endian.GetLittleEndianEngine(),
//	    codec.KindUint64, codec.KindFloat64))
func NewCodecRegistry() *codec.Registry {
	return codec.NewRegistry()
}
