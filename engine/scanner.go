package engine

import (
	"fmt"
	"time"

	"github.com/arloliu/logpack/codec"
	"github.com/arloliu/logpack/encoding"
	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/section"
	"github.com/arloliu/logpack/staging"
)

// scanner drains staging buffers round-robin into the output buffer being
// filled, compressing each record as it goes.
//
// The delta state (last format id, last timestamp) lives for the engine's
// lifetime and is never reset mid-stream: the persisted file is one
// continuous delta chain, and readers must track the same state to
// reverse it.
type scanner struct {
	buffers *staging.Registry
	codecs  *codec.Registry
	engine  endian.EndianEngine
	meta    *encoding.MetadataEncoder
	pos     int
	stats   *counters
}

func newScanner(buffers *staging.Registry, codecs *codec.Registry, eng endian.EndianEngine, stats *counters) *scanner {
	return &scanner{
		buffers: buffers,
		codecs:  codecs,
		engine:  eng,
		meta:    encoding.NewMetadataEncoder(),
		stats:   stats,
	}
}

// fill compresses staged records into out until either one full sweep
// finds no data anywhere (quiescent) or the next record's worst case no
// longer fits (full). On a full stop the scan position stays on the
// current buffer, so the next fill resumes exactly where this one gave
// up; otherwise the position advances one slot per claim, which is what
// keeps a single busy producer from starving its neighbors.
func (s *scanner) fill(out *outBuffer) {
	quietSlots := 0
	for {
		claim, ok := s.buffers.Claim(s.pos)
		if !ok {
			return // no producers registered
		}

		consumed, fit := s.drain(out, claim.Data)
		if consumed > 0 {
			claim.Buf.Consume(consumed)
			s.stats.bytesRead.Add(uint64(consumed))
			quietSlots = 0
		} else {
			quietSlots++
		}

		if !fit {
			s.pos = claim.Index

			return
		}

		s.pos = claim.Index + 1
		if quietSlots >= claim.Slots {
			return // a full sweep produced nothing
		}
	}
}

// drain compresses records from one peeked view until the view is
// exhausted or the next record's worst case exceeds the remaining output
// space. It returns how many staged bytes to consume and whether the
// sweep may advance past this buffer.
//
// Malformed staged records and records too large for an empty output
// buffer are invariant violations, not runtime errors: the first means a
// producer corrupted its buffer, the second that the engine was
// configured with a buffer smaller than the largest record. Both panic.
func (s *scanner) drain(out *outBuffer, data []byte) (consumed int, fit bool) {
	if len(data) == 0 {
		return 0, true
	}

	start := time.Now()
	defer func() {
		s.stats.compressNanos.Add(uint64(time.Since(start))) //nolint:gosec
	}()

	cursor := section.NewRecordCursor(data, s.engine)
	for cursor.Remaining() > 0 {
		entry, err := cursor.Next()
		if err != nil {
			panic(fmt.Sprintf("engine: malformed staged record at offset %d: %v", consumed, err))
		}

		worst := entry.WorstCaseSize()
		if worst > out.capacity() {
			panic(fmt.Sprintf("engine: record worst case %d bytes exceeds output buffer capacity %d", worst, out.capacity()))
		}
		if worst > out.remaining() {
			return consumed, false
		}

		s.compress(out, entry)
		consumed = cursor.Offset()
	}

	return consumed, true
}

// compress emits one record: delta-encoded metadata, then the format
// codec's compressed argument payload. The fit check in drain guarantees
// these appends never outgrow the buffer as long as the producer reserved
// at least the codec's MetaBytes; a codec emitting past that reservation
// is caught here.
func (s *scanner) compress(out *outBuffer, entry section.RecordEntry) {
	c := s.codecs.MustGet(entry.FmtID)

	before := out.length()
	out.data = s.meta.Encode(out.data, entry.FmtID, entry.Timestamp)
	out.data = c.Compress(out.data, entry.Args)

	if growth := out.length() - before; growth > entry.WorstCaseSize() {
		panic(fmt.Sprintf("engine: format %d compressed to %d bytes, over its %d-byte worst-case reservation",
			entry.FmtID, growth, entry.WorstCaseSize()))
	}

	s.stats.records.Add(1)
}
