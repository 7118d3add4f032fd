package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/logpack/compress"
	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/format"
	"github.com/arloliu/logpack/section"
)

// writeTarget is the destination of submitted buffers. *os.File implements
// it; tests substitute in-memory targets to observe submissions.
type writeTarget interface {
	io.Writer
	Sync() error
	Close() error
}

// writeResult is the completion notification of one asynchronous write.
type writeResult struct {
	n   int
	err error
}

// writer owns the persistence side of the double-buffer rotation. The
// invariant it maintains: at most one write is in flight, and the memory
// backing that write is never touched until its completion notification
// has been received. Submission order is therefore fixed — wait for the
// outstanding write, build the new payload, launch it, swap buffers.
type writer struct {
	dst    writeTarget
	engine endian.EndianEngine
	log    logrus.FieldLogger
	stats  *counters

	direct   bool
	blockCmp format.CompressionType
	codec    compress.Codec // nil unless block compression is enabled
	frame    *outBuffer     // block frame assembly area

	spare   *outBuffer       // resolved sibling, handed out on submit
	pending chan writeResult // non-nil while a write is outstanding
}

// frameSlack is the extra frame buffer capacity beyond the block size:
// room for the header plus its sector padding.
const frameSlack = SectorSize

func newWriter(dst writeTarget, spare *outBuffer, cfg config, stats *counters) (*writer, error) {
	w := &writer{
		dst:      dst,
		engine:   cfg.engine,
		log:      cfg.logger,
		stats:    stats,
		direct:   cfg.directIO,
		blockCmp: cfg.blockComp,
		spare:    spare,
	}

	if cfg.blockComp != format.CompressionNone {
		c, err := compress.GetCodec(cfg.blockComp)
		if err != nil {
			return nil, err
		}
		w.codec = c
		w.frame = newOutBuffer(cfg.bufferSize + frameSlack)
	}

	return w, nil
}

// submit persists the filled buffer asynchronously and returns the
// sibling buffer, reset and safe to fill: its own write — if it ever had
// one — was resolved before the new write launched.
func (w *writer) submit(filled *outBuffer) *outBuffer {
	w.wait()

	start := time.Now()

	target := filled
	if w.codec != nil {
		target = w.assembleFrame(filled)
	}
	w.stats.bytesWritten.Add(uint64(target.length())) //nolint:gosec

	if w.direct {
		w.stats.padBytes.Add(uint64(target.padTo(SectorSize))) //nolint:gosec
	}

	w.stats.writesSubmitted.Add(1)
	ch := make(chan writeResult, 1)
	w.pending = ch
	go func(data []byte) {
		n, err := w.dst.Write(data)
		if err == nil && n < len(data) {
			err = io.ErrShortWrite
		}
		ch <- writeResult{n: n, err: err}
	}(target.bytes())

	next := w.spare
	w.spare = filled
	next.reset()

	w.stats.writeNanos.Add(uint64(time.Since(start))) //nolint:gosec

	return next
}

// wait blocks until the outstanding write, if any, resolves. A failed
// write is logged and counted but never aborts the engine: the rotation
// proceeds and the data in that write is gone. This is a known durability
// gap, not an error path.
func (w *writer) wait() {
	if w.pending == nil {
		return
	}

	start := time.Now()
	res := <-w.pending
	w.pending = nil
	w.stats.writeNanos.Add(uint64(time.Since(start))) //nolint:gosec

	w.stats.writesCompleted.Add(1)
	if res.err != nil {
		w.stats.writeFailures.Add(1)
		w.log.WithError(res.err).WithField("bytes", res.n).Error("asynchronous write failed")
	}
}

// assembleFrame compresses one filled buffer and frames it behind a block
// header in the frame buffer. When the codec errors or fails to shrink
// the block, the frame carries the raw bytes marked CompressionNone, so
// the stream stays decodable no matter what the codec did.
//
// Reusing one frame buffer is safe because the caller waits out the prior
// write before assembling the next frame.
func (w *writer) assembleFrame(filled *outBuffer) *outBuffer {
	raw := filled.bytes()

	typ := w.blockCmp
	comp, err := w.codec.Compress(raw)
	if err != nil {
		w.log.WithError(err).Warn("block compression failed, framing block raw")
		comp, typ = raw, format.CompressionNone
	} else if len(comp) >= len(raw) {
		comp, typ = raw, format.CompressionNone
	}

	w.frame.reset()
	header := section.NewBlockHeader(typ, len(raw), comp)
	w.frame.data = header.AppendTo(w.frame.data, w.engine)
	w.frame.data = append(w.frame.data, comp...)

	return w.frame
}

// close drains the outstanding write, optionally flushes to stable
// storage, and closes the destination. A flush failure is logged but does
// not block shutdown; the close error is returned.
func (w *writer) close(syncOnClose bool) error {
	w.wait()

	start := time.Now()
	defer func() {
		w.stats.writeNanos.Add(uint64(time.Since(start))) //nolint:gosec
	}()

	if syncOnClose {
		if err := w.dst.Sync(); err != nil {
			w.log.WithError(err).Error("flush to stable storage failed")
		}
	}

	return w.dst.Close()
}
