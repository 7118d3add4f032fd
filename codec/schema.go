package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/logpack/encoding"
	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
)

// Kind identifies the wire type of one field in a format's raw argument
// layout.
//
// One-byte kinds and floats are copied verbatim. Wider unsigned integers
// compress to uvarint, signed ones to zigzag varint. String and bytes
// fields carry a uint32 length prefix in the raw layout; the compressed
// form swaps it for a uvarint prefix and copies the payload verbatim.
type Kind uint8

const (
	KindUint8 Kind = iota + 1
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindUint64
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "Uint8"
	case KindInt8:
		return "Int8"
	case KindUint16:
		return "Uint16"
	case KindInt16:
		return "Int16"
	case KindUint32:
		return "Uint32"
	case KindInt32:
		return "Int32"
	case KindUint64:
		return "Uint64"
	case KindInt64:
		return "Int64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// metaBytes returns the worst-case growth Compress may add for one field of
// this kind: the compressed varint form at its widest, minus the raw fixed
// width it replaces.
func (k Kind) metaBytes() int {
	switch k {
	case KindUint8, KindInt8, KindFloat32, KindFloat64:
		return 0
	case KindUint16, KindInt16:
		return binary.MaxVarintLen16 - 2
	case KindUint32, KindInt32, KindString, KindBytes:
		return binary.MaxVarintLen32 - 4
	case KindUint64, KindInt64:
		return binary.MaxVarintLen64 - 8
	default:
		return 0
	}
}

// Schema compresses the typed argument layout of one record format
// field by field.
//
// Producers write arguments as fixed-width values in the engine's byte
// order, in schema order. Compression narrows integer fields to varints,
// which pays off because log arguments are dominated by small counters,
// lengths, and ids.
type Schema struct {
	engine endian.EndianEngine
	kinds  []Kind
	meta   int
}

var _ Codec = (*Schema)(nil)

// NewSchema creates a codec for the given field layout. The engine must
// match the byte order producers use when staging arguments.
//
// Parameters:
//   - engine: byte order engine for fixed-width fields
//   - kinds: field kinds in raw layout order
//
// Returns:
//   - *Schema: codec for the layout
//
// Panics if kinds is empty or contains an undefined kind; schemas are
// declared once at startup, so a bad layout is a programming error.
func NewSchema(engine endian.EndianEngine, kinds ...Kind) *Schema {
	if len(kinds) == 0 {
		panic("codec: schema requires at least one field")
	}

	meta := 0
	for i, k := range kinds {
		if k < KindUint8 || k > KindBytes {
			panic(fmt.Sprintf("codec: schema field %d has undefined kind %d", i, k))
		}
		meta += k.metaBytes()
	}

	return &Schema{
		engine: engine,
		kinds:  append([]Kind(nil), kinds...),
		meta:   meta,
	}
}

// Compress appends the field-wise compressed form of args to dst.
//
// Panics when args does not match the schema layout exactly; a mismatched
// payload means the producer staged a record with the wrong format id.
func (s *Schema) Compress(dst []byte, args []byte) []byte {
	off := 0
	for i, k := range s.kinds {
		switch k {
		case KindUint8, KindInt8:
			s.need(i, args, off, 1)
			dst = append(dst, args[off])
			off++
		case KindUint16:
			s.need(i, args, off, 2)
			dst = binary.AppendUvarint(dst, uint64(s.engine.Uint16(args[off:])))
			off += 2
		case KindInt16:
			s.need(i, args, off, 2)
			dst = binary.AppendUvarint(dst, encoding.ZigZagEncode(int64(int16(s.engine.Uint16(args[off:]))))) //nolint:gosec
			off += 2
		case KindUint32:
			s.need(i, args, off, 4)
			dst = binary.AppendUvarint(dst, uint64(s.engine.Uint32(args[off:])))
			off += 4
		case KindInt32:
			s.need(i, args, off, 4)
			dst = binary.AppendUvarint(dst, encoding.ZigZagEncode(int64(int32(s.engine.Uint32(args[off:]))))) //nolint:gosec
			off += 4
		case KindUint64:
			s.need(i, args, off, 8)
			dst = binary.AppendUvarint(dst, s.engine.Uint64(args[off:]))
			off += 8
		case KindInt64:
			s.need(i, args, off, 8)
			dst = binary.AppendUvarint(dst, encoding.ZigZagEncode(int64(s.engine.Uint64(args[off:])))) //nolint:gosec
			off += 8
		case KindFloat32:
			s.need(i, args, off, 4)
			dst = append(dst, args[off:off+4]...)
			off += 4
		case KindFloat64:
			s.need(i, args, off, 8)
			dst = append(dst, args[off:off+8]...)
			off += 8
		case KindString, KindBytes:
			s.need(i, args, off, 4)
			size := int(s.engine.Uint32(args[off:]))
			off += 4
			s.need(i, args, off, size)
			dst = binary.AppendUvarint(dst, uint64(size))
			dst = append(dst, args[off:off+size]...)
			off += size
		}
	}

	if off != len(args) {
		panic(fmt.Sprintf("codec: schema consumed %d of %d argument bytes", off, len(args)))
	}

	return dst
}

// Decompress reconstructs the raw fixed-width argument layout from one
// compressed payload at the start of src.
func (s *Schema) Decompress(dst []byte, src []byte) ([]byte, int, error) {
	off := 0
	for i, k := range s.kinds {
		switch k {
		case KindUint8, KindInt8:
			if off+1 > len(src) {
				return dst, 0, s.truncated(i, off, len(src))
			}
			dst = append(dst, src[off])
			off++
		case KindUint16:
			v, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			dst = s.engine.AppendUint16(dst, uint16(v)) //nolint:gosec
			off += n
		case KindInt16:
			v, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			dst = s.engine.AppendUint16(dst, uint16(int16(encoding.ZigZagDecode(v)))) //nolint:gosec
			off += n
		case KindUint32:
			v, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			dst = s.engine.AppendUint32(dst, uint32(v)) //nolint:gosec
			off += n
		case KindInt32:
			v, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			dst = s.engine.AppendUint32(dst, uint32(int32(encoding.ZigZagDecode(v)))) //nolint:gosec
			off += n
		case KindUint64:
			v, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			dst = s.engine.AppendUint64(dst, v)
			off += n
		case KindInt64:
			v, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			dst = s.engine.AppendUint64(dst, uint64(encoding.ZigZagDecode(v))) //nolint:gosec
			off += n
		case KindFloat32:
			if off+4 > len(src) {
				return dst, 0, s.truncated(i, off, len(src))
			}
			dst = append(dst, src[off:off+4]...)
			off += 4
		case KindFloat64:
			if off+8 > len(src) {
				return dst, 0, s.truncated(i, off, len(src))
			}
			dst = append(dst, src[off:off+8]...)
			off += 8
		case KindString, KindBytes:
			size, n, err := encoding.Uvarint(src[off:])
			if err != nil {
				return dst, 0, fmt.Errorf("%w: field %d", err, i)
			}
			off += n
			end := off + int(size)
			if end > len(src) {
				return dst, 0, s.truncated(i, off, len(src))
			}
			dst = s.engine.AppendUint32(dst, uint32(size)) //nolint:gosec
			dst = append(dst, src[off:end]...)
			off = end
		}
	}

	return dst, off, nil
}

// MetaBytes returns the worst-case growth over the raw argument length.
func (s *Schema) MetaBytes() int {
	return s.meta
}

func (s *Schema) need(field int, args []byte, off int, n int) {
	if off+n > len(args) {
		panic(fmt.Sprintf("codec: schema field %d needs %d bytes at offset %d, payload has %d", field, n, off, len(args)))
	}
}

func (s *Schema) truncated(field int, off int, have int) error {
	return fmt.Errorf("%w: field %d at offset %d of %d", errs.ErrTruncatedPayload, field, off, have)
}
