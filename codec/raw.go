package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/logpack/encoding"
	"github.com/arloliu/logpack/errs"
)

// Raw passes argument bytes through unchanged behind a uvarint length
// prefix. It is the fallback for formats whose argument layout is opaque to
// the compressor.
type Raw struct{}

var _ Codec = Raw{}

// NewRaw creates a passthrough codec.
//
// Returns:
//   - Raw: codec that stores arguments verbatim
func NewRaw() Raw {
	return Raw{}
}

// Compress appends a uvarint length prefix followed by args verbatim.
func (Raw) Compress(dst []byte, args []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(args)))

	return append(dst, args...)
}

// Decompress reads the length prefix and copies that many raw bytes.
func (Raw) Decompress(dst []byte, src []byte) ([]byte, int, error) {
	size, n, err := encoding.Uvarint(src)
	if err != nil {
		return dst, 0, fmt.Errorf("%w: raw payload length", err)
	}

	end := n + int(size)
	if end > len(src) {
		return dst, 0, fmt.Errorf("%w: raw payload needs %d bytes, have %d", errs.ErrTruncatedPayload, end, len(src))
	}

	return append(dst, src[n:end]...), end, nil
}

// MetaBytes returns the worst-case length-prefix overhead.
func (Raw) MetaBytes() int {
	return binary.MaxVarintLen32
}
