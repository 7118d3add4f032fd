// Package engine implements the background compression-and-persistence
// engine: a single goroutine that drains per-producer staging buffers,
// delta-compresses their binary log records, and writes the result with
// double-buffered asynchronous I/O so producers never stall on disk
// latency.
//
// # The Loop
//
// Each pass sweeps the staging registry round-robin. For every claimed
// buffer the scanner walks its records, reserves each record's worst-case
// size (raw size plus the codec's declared growth bound), and compresses
// it into the output buffer being filled: delta-encoded metadata first,
// then the format codec's argument payload. A pass ends when a full sweep
// finds no data, or when the next record no longer fits — in which case
// the scan position is saved so the next pass resumes at the same buffer.
//
// A non-empty fill is handed to the writer, which waits out the previous
// asynchronous write, submits the new one, and returns the resolved
// sibling buffer. At most one write is ever in flight, and no buffer is
// refilled while a write still targets it.
//
// # Output
//
// By default the file is an undelimited sequence of compressed records in
// consumption order; readers reverse the delta chain by tracking the same
// (format id, timestamp) state. With block compression enabled, each
// filled buffer is compressed whole and framed behind a section.BlockHeader.
// In direct mode every submission is zero-padded to the 512-byte sector
// size; pad is accounted separately and is never log content.
//
// # Control Surface
//
// Sync blocks until everything staged before the call has been persisted,
// using one extra sweep to close the race with an in-progress pass. Close
// stops the loop, drains the outstanding write, flushes to stable storage,
// and logs a statistics report. Both are safe from any goroutine, and
// Close releases concurrent Sync callers.
package engine
