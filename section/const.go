package section

const (
	// RecordHeaderSize is the fixed size of the record entry header that
	// precedes every raw record's argument bytes.
	RecordHeaderSize = 20

	// BlockHeaderSize is the fixed size of the frame header that precedes
	// every block-compressed output buffer.
	BlockHeaderSize = 24

	// BlockMagicNumber marks the start of a block frame. A zero word where a
	// magic number is expected means alignment padding, never a frame.
	BlockMagicNumber = 0x4C504B42

	// BlockFormatVersion is the current block frame version.
	BlockFormatVersion = 0x1
)

// Byte offsets of the RecordEntry header fields.
const (
	entrySizeOffset    = 0  // EntrySize    u32, bytes 0-3
	argMetaBytesOffset = 4  // ArgMetaBytes u32, bytes 4-7
	fmtIDOffset        = 8  // FmtID        u32, bytes 8-11
	timestampOffset    = 12 // Timestamp    u64, bytes 12-19
)

// Byte offsets of the BlockHeader fields.
const (
	blockMagicOffset       = 0  // Magic       u32, bytes 0-3
	blockVersionOffset     = 4  // Version     u8,  byte 4
	blockCompressionOffset = 5  // Compression u8,  byte 5
	blockReservedOffset    = 6  // Reserved    u16, bytes 6-7
	blockRawLenOffset      = 8  // RawLen      u32, bytes 8-11
	blockCompLenOffset     = 12 // CompLen     u32, bytes 12-15
	blockChecksumOffset    = 16 // Checksum    u64, bytes 16-23
)
