package section

import "github.com/arloliu/logpack/endian"

// RecordCursor walks successive record entries inside a peeked staging
// region with checked advancement: every step validates the declared span
// against the remaining bytes, so the cursor can never read past the region
// it was given.
//
// The cursor does not consume anything from the underlying buffer; callers
// pair each successfully processed entry with a Consume call on the buffer
// that produced the region.
type RecordCursor struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// NewRecordCursor creates a cursor over one contiguous readable region.
func NewRecordCursor(data []byte, engine endian.EndianEngine) *RecordCursor {
	return &RecordCursor{data: data, engine: engine}
}

// Remaining returns the number of unparsed bytes left in the region.
func (c *RecordCursor) Remaining() int {
	return len(c.data) - c.offset
}

// Offset returns the cursor position relative to the start of the region.
func (c *RecordCursor) Offset() int {
	return c.offset
}

// Next parses the record entry at the cursor and advances past it.
// It must only be called while Remaining is positive.
//
// Returns:
//   - RecordEntry: the parsed entry; Args alias the cursor's region
//   - error: ErrInvalidEntrySize or ErrTruncatedEntry when the region does
//     not hold a well-formed record at the cursor position
func (c *RecordCursor) Next() (RecordEntry, error) {
	entry, err := ParseRecordEntry(c.data[c.offset:], c.engine)
	if err != nil {
		return RecordEntry{}, err
	}

	c.offset += int(entry.EntrySize)

	return entry, nil
}
