package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/logpack/errs"
)

// ZigZagEncode maps a signed value to an unsigned one so that values close
// to zero in either direction produce short varints.
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// Uvarint decodes an unsigned varint from the start of data.
//
// Returns:
//   - uint64: the decoded value
//   - int: the number of bytes consumed
//   - error: ErrInvalidVarint when data is truncated or the value overflows
//     64 bits
func Uvarint(data []byte) (uint64, int, error) {
	v, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: %d readable bytes", errs.ErrInvalidVarint, len(data))
	}

	return v, n, nil
}
