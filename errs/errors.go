// Package errs defines the sentinel errors shared across logpack packages.
//
// All errors are plain sentinel values created with errors.New. Call sites
// add context by wrapping them with fmt.Errorf("%w: ...", err, ...), so
// callers can always match the underlying condition with errors.Is.
package errs

import "errors"

// Configuration errors returned by engine construction.
var (
	// ErrInvalidBufferSize indicates the output buffer size is not a positive
	// multiple of the 512-byte sector size.
	ErrInvalidBufferSize = errors.New("invalid output buffer size")

	// ErrInvalidPollInterval indicates a non-positive idle poll interval.
	ErrInvalidPollInterval = errors.New("invalid poll interval")

	// ErrInvalidCompressionType indicates an unknown block compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)

// Record layout errors returned when parsing staging records.
var (
	// ErrInvalidEntrySize indicates a record header whose entry size is
	// smaller than the fixed header itself.
	ErrInvalidEntrySize = errors.New("invalid record entry size")

	// ErrTruncatedEntry indicates a record whose declared span extends past
	// the readable bytes of its staging buffer.
	ErrTruncatedEntry = errors.New("truncated record entry")
)

// Block frame errors returned when parsing block-compressed output.
var (
	// ErrInvalidBlockSize indicates a block header shorter than the fixed
	// frame layout.
	ErrInvalidBlockSize = errors.New("invalid block header size")

	// ErrInvalidMagicNumber indicates a block frame that does not start with
	// the logpack magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidBlockVersion indicates an unsupported block format version.
	ErrInvalidBlockVersion = errors.New("invalid block format version")

	// ErrChecksumMismatch indicates a block payload whose xxHash64 checksum
	// does not match the value recorded in its header.
	ErrChecksumMismatch = errors.New("block checksum mismatch")
)

// Decoding errors returned by the metadata and argument codecs.
var (
	// ErrInvalidVarint indicates a truncated or malformed varint value.
	ErrInvalidVarint = errors.New("invalid varint encoding")

	// ErrTruncatedPayload indicates an argument payload that ends before all
	// schema fields were decoded.
	ErrTruncatedPayload = errors.New("truncated argument payload")

	// ErrUnknownFormatID indicates a format identifier with no registered
	// codec.
	ErrUnknownFormatID = errors.New("unknown format id")

	// ErrDuplicateFormatID indicates a format identifier registered twice.
	ErrDuplicateFormatID = errors.New("duplicate format id")

	// ErrNilCodec indicates an attempt to register a nil codec.
	ErrNilCodec = errors.New("nil codec")
)

// Staging buffer errors.
var (
	// ErrBufferFull indicates a staging buffer that cannot accept the record
	// without exceeding its capacity.
	ErrBufferFull = errors.New("staging buffer full")

	// ErrRecordTooLarge indicates a record that can never fit the target
	// buffer, even when empty.
	ErrRecordTooLarge = errors.New("record too large")
)
