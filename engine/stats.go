package engine

import (
	"fmt"
	"sync/atomic"
	"time"
)

// counters are the live accumulators, updated lock-free by the scanner
// and writer.
type counters struct {
	records         atomic.Uint64
	bytesRead       atomic.Uint64
	bytesWritten    atomic.Uint64
	padBytes        atomic.Uint64
	writesSubmitted atomic.Uint64
	writesCompleted atomic.Uint64
	writeFailures   atomic.Uint64
	scanNanos       atomic.Uint64
	compressNanos   atomic.Uint64
	writeNanos      atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		RecordsProcessed: c.records.Load(),
		BytesRead:        c.bytesRead.Load(),
		BytesWritten:     c.bytesWritten.Load(),
		PadBytes:         c.padBytes.Load(),
		WritesSubmitted:  c.writesSubmitted.Load(),
		WritesCompleted:  c.writesCompleted.Load(),
		WriteFailures:    c.writeFailures.Load(),
		ScanNanos:        c.scanNanos.Load(),
		CompressNanos:    c.compressNanos.Load(),
		WriteNanos:       c.writeNanos.Load(),
	}
}

// Stats is a point-in-time snapshot of engine activity. All counters are
// monotone; a snapshot is only meaningfully complete after Close returns.
type Stats struct {
	// RecordsProcessed counts records compressed into output buffers.
	RecordsProcessed uint64

	// BytesRead counts raw staged bytes consumed from producer buffers.
	BytesRead uint64

	// BytesWritten counts logical payload bytes submitted for writing,
	// excluding alignment padding. It is incremented at submission time,
	// so bytes of a write that later fails are still counted here.
	BytesWritten uint64

	// PadBytes counts alignment zeros emitted in direct mode. Pad is never
	// log content and is tracked apart from BytesWritten.
	PadBytes uint64

	// WritesSubmitted and WritesCompleted track the asynchronous write
	// pipeline; they differ by at most one, the write currently in flight.
	WritesSubmitted uint64
	WritesCompleted uint64

	// WriteFailures counts completed writes that reported an error. Their
	// data is not retried.
	WriteFailures uint64

	// ScanNanos covers whole scan+compress passes, CompressNanos just the
	// compression inside them, WriteNanos the submission waits and the
	// final flush.
	ScanNanos     uint64
	CompressNanos uint64
	WriteNanos    uint64
}

// Report renders the snapshot as a human-readable summary, the shape the
// engine logs at shutdown.
func (s Stats) Report() string {
	ratio := 0.0
	if s.BytesWritten > 0 {
		ratio = float64(s.BytesRead) / float64(s.BytesWritten)
	}

	perRecord := uint64(0)
	if s.RecordsProcessed > 0 {
		perRecord = (s.ScanNanos + s.WriteNanos) / s.RecordsProcessed
	}

	active := time.Duration(s.ScanNanos + s.WriteNanos) //nolint:gosec
	throughput := 0.0
	if active > 0 {
		throughput = float64(s.BytesWritten) / active.Seconds() / (1 << 20)
	}

	return fmt.Sprintf(
		"persisted %d records: %d bytes in, %d bytes out (+%d pad), ratio %.2fx, %.2f MB/s\n"+
			"writes: %d submitted, %d completed, %d failed\n"+
			"phases: scan+compress %s (compress %s), write+flush %s, avg %dns/record",
		s.RecordsProcessed, s.BytesRead, s.BytesWritten, s.PadBytes, ratio, throughput,
		s.WritesSubmitted, s.WritesCompleted, s.WriteFailures,
		time.Duration(s.ScanNanos), time.Duration(s.CompressNanos), time.Duration(s.WriteNanos), //nolint:gosec
		perRecord,
	)
}
