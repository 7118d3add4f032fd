package section

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
	"github.com/arloliu/logpack/format"
)

// BlockHeader is the fixed frame header written in front of each
// block-compressed output buffer.
type BlockHeader struct {
	// Magic is always BlockMagicNumber.
	Magic uint32 // byte offset 0-3
	// Version is the block frame version, currently BlockFormatVersion.
	Version uint8 // byte offset 4
	// Compression identifies the payload compression.
	Compression format.CompressionType // byte offset 5
	// RawLen is the uncompressed block length in bytes.
	RawLen uint32 // byte offset 8-11
	// CompLen is the compressed payload length in bytes.
	CompLen uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the CompLen payload bytes that follow the
	// header.
	Checksum uint64 // byte offset 16-23
}

// NewBlockHeader builds the frame header for one payload. The payload is the
// exact byte sequence that will follow the header on disk; rawLen is the
// block length before compression.
func NewBlockHeader(compression format.CompressionType, rawLen int, payload []byte) BlockHeader {
	return BlockHeader{
		Magic:       BlockMagicNumber,
		Version:     BlockFormatVersion,
		Compression: compression,
		RawLen:      uint32(rawLen),       //nolint:gosec
		CompLen:     uint32(len(payload)), //nolint:gosec
		Checksum:    xxhash.Sum64(payload),
	}
}

// AppendTo appends the serialized header to dst and returns the extended
// slice.
func (h BlockHeader) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, h.Magic)
	dst = append(dst, h.Version, uint8(h.Compression))
	dst = engine.AppendUint16(dst, 0) // reserved
	dst = engine.AppendUint32(dst, h.RawLen)
	dst = engine.AppendUint32(dst, h.CompLen)

	return engine.AppendUint64(dst, h.Checksum)
}

// ParseBlockHeader parses a frame header from the start of data.
//
// Returns:
//   - BlockHeader: the parsed header
//   - error: ErrInvalidBlockSize when data is shorter than BlockHeaderSize,
//     ErrInvalidMagicNumber or ErrInvalidBlockVersion on field mismatches
func ParseBlockHeader(data []byte, engine endian.EndianEngine) (BlockHeader, error) {
	if len(data) < BlockHeaderSize {
		return BlockHeader{}, fmt.Errorf("%w: %d bytes, need %d",
			errs.ErrInvalidBlockSize, len(data), BlockHeaderSize)
	}

	h := BlockHeader{
		Magic:       engine.Uint32(data[blockMagicOffset : blockMagicOffset+4]),
		Version:     data[blockVersionOffset],
		Compression: format.CompressionType(data[blockCompressionOffset]),
		RawLen:      engine.Uint32(data[blockRawLenOffset : blockRawLenOffset+4]),
		CompLen:     engine.Uint32(data[blockCompLenOffset : blockCompLenOffset+4]),
		Checksum:    engine.Uint64(data[blockChecksumOffset : blockChecksumOffset+8]),
	}

	if h.Magic != BlockMagicNumber {
		return BlockHeader{}, fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagicNumber, h.Magic)
	}
	if h.Version != BlockFormatVersion {
		return BlockHeader{}, fmt.Errorf("%w: %d", errs.ErrInvalidBlockVersion, h.Version)
	}

	return h, nil
}

// VerifyPayload checks the payload against the checksum recorded in the
// header. It returns ErrChecksumMismatch when they differ.
func (h BlockHeader) VerifyPayload(payload []byte) error {
	if sum := xxhash.Sum64(payload); sum != h.Checksum {
		return fmt.Errorf("%w: stored 0x%016X, computed 0x%016X",
			errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	return nil
}
