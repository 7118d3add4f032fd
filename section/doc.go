// Package section defines the low-level binary structures of the logpack
// stream formats.
//
// Two fixed layouts live here, one on each side of the engine:
//
//  1. RecordEntry: the header every producer writes in front of a raw log
//     record inside its staging buffer (the engine's input format).
//  2. BlockHeader: the frame header written in front of each
//     block-compressed output buffer (the engine's optional output format).
//
// Both are parsed and serialized through an endian.EndianEngine so the byte
// order is decided once at engine construction.
//
// # Record Entry Format
//
// A raw record is a self-describing span inside a staging buffer:
//
//	Bytes  | Field        | Type | Description
//	-------|--------------|------|------------------------------------------
//	0-3    | EntrySize    | u32  | total record span, header included
//	4-7    | ArgMetaBytes | u32  | worst-case growth reserve for arguments
//	8-11   | FmtID        | u32  | format identifier, selects the codec
//	12-19  | Timestamp    | u64  | producer clock value
//	20-... | arguments    |      | EntrySize-20 bytes of raw argument data
//
// EntrySize never exceeds the readable bytes of the owning buffer; the
// RecordCursor enforces that bound on every advance. ArgMetaBytes is the
// number of extra bytes the record's codec may need beyond the raw argument
// length in the worst case, so EntrySize+ArgMetaBytes is a safe reservation
// in the output buffer before compressing.
//
// # Block Frame Format
//
// When block compression is enabled, each filled output buffer is framed:
//
//	Bytes  | Field       | Type | Description
//	-------|-------------|------|-------------------------------------------
//	0-3    | Magic       | u32  | BlockMagicNumber
//	4      | Version     | u8   | BlockFormatVersion
//	5      | Compression | u8   | format.CompressionType of the payload
//	6-7    | Reserved    | u16  | zero
//	8-11   | RawLen      | u32  | uncompressed block length
//	12-15  | CompLen     | u32  | compressed payload length
//	16-23  | Checksum    | u64  | xxHash64 of the payload bytes
//
// Frames are concatenated in write order. Alignment padding between frames
// is always zero bytes, so a reader positioned on padding sees a zero magic
// word and skips forward to the next 512-byte sector boundary.
package section
