// Package endian provides byte order selection for logpack binary layouts.
//
// Record entry headers and block frame headers are encoded through an
// EndianEngine so the byte order is decided once, at engine construction,
// instead of being hardwired at every field access. The interface unifies
// encoding/binary's ByteOrder and AppendByteOrder, which binary.LittleEndian
// and binary.BigEndian both satisfy.
//
// Little-endian is the default everywhere in logpack; big-endian exists for
// interoperability with producers on big-endian hosts that write record
// headers in their native order.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for fixed-layout encode and decode operations.
//
// The instances returned by GetLittleEndianEngine and GetBigEndianEngine are
// stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
