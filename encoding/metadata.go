package encoding

import (
	"encoding/binary"
)

// MaxMetadataSize is the worst-case encoded size of one record's metadata:
// a 5-byte format id delta plus a 10-byte timestamp delta. It is always
// smaller than the 20-byte raw record header the metadata replaces.
const MaxMetadataSize = binary.MaxVarintLen32 + binary.MaxVarintLen64

// MetadataEncoder delta-encodes the (format id, timestamp) pair of
// successive records.
//
// The encoder keeps the previous record's values and emits only the
// differences, zigzag+varint encoded. State lives for the lifetime of the
// owning engine and is reset only on construction; the first record is
// encoded as a delta against the zero state.
//
// Not safe for concurrent use; exactly one engine goroutine owns it.
type MetadataEncoder struct {
	lastFmtID     uint32
	lastTimestamp uint64
}

// NewMetadataEncoder creates an encoder with zeroed delta state.
func NewMetadataEncoder() *MetadataEncoder {
	return &MetadataEncoder{}
}

// Encode appends the delta-encoded metadata for one record to dst and
// returns the extended slice, advancing the encoder state. The appended
// bytes never exceed MaxMetadataSize.
func (e *MetadataEncoder) Encode(dst []byte, fmtID uint32, timestamp uint64) []byte {
	// Both deltas wrap in two's complement, so the decoder's additions
	// reconstruct the originals exactly even across wraparound.
	fmtDelta := int64(int32(fmtID - e.lastFmtID)) //nolint:gosec
	tsDelta := int64(timestamp - e.lastTimestamp) //nolint:gosec

	dst = binary.AppendUvarint(dst, ZigZagEncode(fmtDelta))
	dst = binary.AppendUvarint(dst, ZigZagEncode(tsDelta))

	e.lastFmtID = fmtID
	e.lastTimestamp = timestamp

	return dst
}

// MetadataDecoder mirrors MetadataEncoder's state machine for readers of the
// compressed stream. Feed it every record's metadata in stream order,
// starting from the beginning of the stream.
type MetadataDecoder struct {
	lastFmtID     uint32
	lastTimestamp uint64
}

// NewMetadataDecoder creates a decoder with zeroed delta state.
func NewMetadataDecoder() *MetadataDecoder {
	return &MetadataDecoder{}
}

// Decode reads one record's metadata from the start of src and advances the
// decoder state.
//
// Returns:
//   - uint32: the record's format id
//   - uint64: the record's timestamp
//   - int: the number of bytes consumed from src
//   - error: ErrInvalidVarint when src does not start with two well-formed
//     varints
func (d *MetadataDecoder) Decode(src []byte) (uint32, uint64, int, error) {
	fmtZig, n1, err := Uvarint(src)
	if err != nil {
		return 0, 0, 0, err
	}

	tsZig, n2, err := Uvarint(src[n1:])
	if err != nil {
		return 0, 0, 0, err
	}

	fmtID := d.lastFmtID + uint32(ZigZagDecode(fmtZig))        //nolint:gosec
	timestamp := d.lastTimestamp + uint64(ZigZagDecode(tsZig)) //nolint:gosec

	d.lastFmtID = fmtID
	d.lastTimestamp = timestamp

	return fmtID, timestamp, n1 + n2, nil
}
