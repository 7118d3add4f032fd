package staging

import (
	"fmt"
	"sync"

	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
	"github.com/arloliu/logpack/internal/pool"
	"github.com/arloliu/logpack/section"
)

// Buffer is the engine-facing side of a staging buffer.
//
// Implementations must guarantee that Peek views end on record boundaries
// and stay valid until the next Consume. MemBuffer is the built-in
// implementation; alternative ones (ring buffers, shared-memory segments)
// only need these two methods to be drained by the engine.
type Buffer interface {
	// Peek returns a view of all currently buffered bytes. The view is
	// invalidated by the next Consume call.
	Peek() []byte

	// Consume releases the first n bytes of the last Peek view. n must lie
	// on a record boundary and not exceed the view length.
	Consume(n int)
}

// MemBuffer is a fixed-capacity in-memory staging buffer.
//
// Producers append whole records under a short mutex hold; the engine
// peeks and consumes under the same mutex. The backing array is recycled
// in place: once every buffered byte has been consumed, the write position
// snaps back to the start. There is no compaction while data is in
// flight, so a Peek view is never moved underneath the engine.
type MemBuffer struct {
	mu      sync.Mutex
	buf     []byte
	readOff int
	size    int
}

var _ Buffer = (*MemBuffer)(nil)

// NewMemBuffer creates a staging buffer holding up to size bytes of
// staged records.
//
// Parameters:
//   - size: buffer capacity in bytes, must be positive
//
// Returns:
//   - *MemBuffer: empty buffer
//   - error: errs.ErrInvalidBufferSize when size is not positive
func NewMemBuffer(size int) (*MemBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBufferSize, size)
	}

	return &MemBuffer{
		buf:  make([]byte, 0, size),
		size: size,
	}, nil
}

// Push appends one complete, already-encoded record.
//
// Returns:
//   - error: errs.ErrRecordTooLarge when the record can never fit this
//     buffer, errs.ErrBufferFull when there is no room right now
func (b *MemBuffer) Push(record []byte) error {
	if len(record) > b.size {
		return fmt.Errorf("%w: record is %d bytes, buffer holds %d", errs.ErrRecordTooLarge, len(record), b.size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.buf)+len(record) > b.size {
		return fmt.Errorf("%w: %d of %d bytes in use, record needs %d", errs.ErrBufferFull, len(b.buf), b.size, len(record))
	}
	b.buf = append(b.buf, record...)

	return nil
}

// AppendRecord encodes one record header plus argument payload and stages
// it. The record is assembled in a pooled scratch buffer outside the lock,
// so concurrent producers on separate buffers never contend.
//
// Parameters:
//   - engine: byte order for the record header
//   - fmtID: format id registered with the engine's codec registry
//   - timestamp: producer clock value, monotone per producer
//   - args: raw argument payload matching the format's codec
//   - argMetaBytes: worst-case compression growth, from Codec.MetaBytes
//
// Returns:
//   - error: errs.ErrRecordTooLarge or errs.ErrBufferFull as for Push
func (b *MemBuffer) AppendRecord(engine endian.EndianEngine, fmtID uint32, timestamp uint64, args []byte, argMetaBytes uint32) error {
	scratch := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(scratch)

	scratch.B = section.AppendRecordEntry(scratch.B, engine, fmtID, timestamp, args, argMetaBytes)

	return b.Push(scratch.B)
}

// Peek returns a view of all buffered bytes. The view is capped so callers
// cannot append into producer space, and it stays valid until the next
// Consume.
func (b *MemBuffer) Peek() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf[b.readOff:len(b.buf):len(b.buf)]
}

// Consume releases the first n bytes of the last Peek view. Once the
// buffer drains completely the write position snaps back to the start,
// reclaiming the whole capacity for producers.
//
// Panics when n overruns the buffered byte count; that means the consumer
// released bytes it never peeked, which would corrupt record framing.
func (b *MemBuffer) Consume(n int) {
	if n < 0 {
		panic(fmt.Sprintf("staging: negative consume %d", n))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.readOff+n > len(b.buf) {
		panic(fmt.Sprintf("staging: consume %d overruns %d buffered bytes", n, len(b.buf)-b.readOff))
	}
	b.readOff += n

	if b.readOff == len(b.buf) {
		b.buf = b.buf[:0]
		b.readOff = 0
	}
}

// Len returns the number of buffered, unconsumed bytes.
func (b *MemBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.buf) - b.readOff
}

// Cap returns the buffer capacity in bytes.
func (b *MemBuffer) Cap() int {
	return b.size
}
