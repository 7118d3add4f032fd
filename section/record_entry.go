package section

import (
	"fmt"

	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
)

// RecordEntry is the parsed view of one raw record inside a staging buffer.
//
// The Args slice aliases the source buffer; it stays valid only until the
// owning buffer's bytes are consumed.
type RecordEntry struct {
	// EntrySize is the total record span in bytes, header included.
	EntrySize uint32 // byte offset 0-3
	// ArgMetaBytes is the worst-case number of extra bytes the record's
	// codec may emit beyond the raw argument length.
	ArgMetaBytes uint32 // byte offset 4-7
	// FmtID identifies the record format and selects its argument codec.
	FmtID uint32 // byte offset 8-11
	// Timestamp is the producer clock value, delta-encoded on output.
	Timestamp uint64 // byte offset 12-19

	// Args is the raw argument payload (EntrySize - RecordHeaderSize bytes).
	Args []byte
}

// WorstCaseSize returns the output space that must be free before this
// record is compressed: its uncompressed span plus the codec's declared
// worst-case growth. Actual compressed output never exceeds it.
func (e RecordEntry) WorstCaseSize() int {
	return int(e.EntrySize) + int(e.ArgMetaBytes)
}

// ParseRecordEntry parses the record at the start of data.
//
// Parameters:
//   - data: readable region of a staging buffer, positioned on a record
//   - engine: byte order the producer used for the header fields
//
// Returns:
//   - RecordEntry: parsed entry whose Args alias data
//   - error: ErrTruncatedEntry if data is shorter than the declared span,
//     ErrInvalidEntrySize if the declared span is smaller than the header
func ParseRecordEntry(data []byte, engine endian.EndianEngine) (RecordEntry, error) {
	if len(data) < RecordHeaderSize {
		return RecordEntry{}, fmt.Errorf("%w: %d bytes readable, header needs %d",
			errs.ErrTruncatedEntry, len(data), RecordHeaderSize)
	}

	entrySize := engine.Uint32(data[entrySizeOffset : entrySizeOffset+4])
	if entrySize < RecordHeaderSize {
		return RecordEntry{}, fmt.Errorf("%w: entry size %d below header size %d",
			errs.ErrInvalidEntrySize, entrySize, RecordHeaderSize)
	}
	if int(entrySize) > len(data) {
		return RecordEntry{}, fmt.Errorf("%w: entry size %d exceeds %d readable bytes",
			errs.ErrTruncatedEntry, entrySize, len(data))
	}

	return RecordEntry{
		EntrySize:    entrySize,
		ArgMetaBytes: engine.Uint32(data[argMetaBytesOffset : argMetaBytesOffset+4]),
		FmtID:        engine.Uint32(data[fmtIDOffset : fmtIDOffset+4]),
		Timestamp:    engine.Uint64(data[timestampOffset : timestampOffset+8]),
		Args:         data[RecordHeaderSize:entrySize],
	}, nil
}

// AppendRecordEntry appends a complete record (header plus argument bytes)
// to dst and returns the extended slice. This is the producer-side
// counterpart of ParseRecordEntry; EntrySize is derived from len(args).
func AppendRecordEntry(dst []byte, engine endian.EndianEngine, fmtID uint32, timestamp uint64, args []byte, argMetaBytes uint32) []byte {
	dst = engine.AppendUint32(dst, uint32(RecordHeaderSize+len(args))) //nolint:gosec
	dst = engine.AppendUint32(dst, argMetaBytes)
	dst = engine.AppendUint32(dst, fmtID)
	dst = engine.AppendUint64(dst, timestamp)

	return append(dst, args...)
}
