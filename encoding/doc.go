// Package encoding implements the delta compression of record metadata and
// the varint primitives shared by the argument codecs.
//
// # Metadata Encoding
//
// Every compressed record starts with its metadata: the format id and the
// timestamp. Consecutive records almost always repeat the same handful of
// format ids and carry nearly-monotonic timestamps, so both fields are
// stored as deltas against the previous record:
//
//	fmtID delta     zigzag + varint, 1-5 bytes
//	timestamp delta zigzag + varint, 1-10 bytes
//
// MetadataEncoder carries {lastFmtID, lastTimestamp} across records for the
// lifetime of the engine; the state is never reset mid-stream, so a reader
// must run the mirror state machine (MetadataDecoder) from the start of the
// stream. The encoded pair never exceeds MaxMetadataSize bytes, which is
// below the 20-byte raw header it replaces — metadata can only shrink.
//
// # Varint Primitives
//
// Zigzag maps signed deltas to unsigned values so small negative deltas stay
// small on the wire; unsigned varints then use 1 byte per 7 bits. Encoding
// appends through encoding/binary's AppendUvarint; Uvarint here adds the
// explicit error reporting that decode paths need.
package encoding
