package engine

import "unsafe"

// bufferAlign is the allocation alignment of output buffers. Page
// alignment satisfies the user-memory requirement direct I/O imposes on
// every filesystem logpack targets.
const bufferAlign = 4096

var zeroSector [SectorSize]byte

// outBuffer is one fixed-capacity output buffer with a write cursor (the
// slice length). The backing array is page-aligned and must never
// reallocate: every append is preceded by a worst-case fit check, so the
// length cannot outgrow the capacity.
type outBuffer struct {
	data []byte
}

func newOutBuffer(size int) *outBuffer {
	return &outBuffer{data: alignedSlice(size, bufferAlign)}
}

// alignedSlice returns a zero-length slice of the given capacity whose
// first byte sits on an align boundary. align must be a power of two.
func alignedSlice(size, align int) []byte {
	raw := make([]byte, size+align)
	off := align - int(uintptr(unsafe.Pointer(&raw[0]))&uintptr(align-1))
	if off == align {
		off = 0
	}

	return raw[off : off : off+size]
}

func (b *outBuffer) bytes() []byte {
	return b.data
}

func (b *outBuffer) length() int {
	return len(b.data)
}

func (b *outBuffer) capacity() int {
	return cap(b.data)
}

func (b *outBuffer) remaining() int {
	return cap(b.data) - len(b.data)
}

func (b *outBuffer) reset() {
	b.data = b.data[:0]
}

// padTo appends zeros until the length is a multiple of unit and returns
// the pad byte count. Explicit zeroing matters: the capacity region may
// still hold bytes from a previous fill, and pad bytes must never leak
// stale record data.
func (b *outBuffer) padTo(unit int) int {
	rem := len(b.data) % unit
	if rem == 0 {
		return 0
	}

	pad := unit - rem
	b.data = append(b.data, zeroSector[:pad]...)

	return pad
}
