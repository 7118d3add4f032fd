package codec

import (
	"fmt"

	"github.com/arloliu/logpack/errs"
)

// Registry maps record format ids to their codecs.
//
// Format ids are small and dense, so the registry is a plain slice indexed
// by id. It is populated once before the engine starts and read-only
// afterwards; lookups on the hot path take no locks.
type Registry struct {
	codecs []Codec
}

// NewRegistry creates an empty registry.
//
// Returns:
//   - *Registry: registry with no formats registered
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds a codec to a format id.
//
// Parameters:
//   - fmtID: format id producers stamp into record headers
//   - c: codec for that format's argument payload
//
// Returns:
//   - error: errs.ErrNilCodec or errs.ErrDuplicateFormatID on invalid input
func (r *Registry) Register(fmtID uint32, c Codec) error {
	if c == nil {
		return fmt.Errorf("%w: format id %d", errs.ErrNilCodec, fmtID)
	}

	if int(fmtID) >= len(r.codecs) {
		grown := make([]Codec, fmtID+1)
		copy(grown, r.codecs)
		r.codecs = grown
	}

	if r.codecs[fmtID] != nil {
		return fmt.Errorf("%w: format id %d", errs.ErrDuplicateFormatID, fmtID)
	}
	r.codecs[fmtID] = c

	return nil
}

// Get returns the codec for a format id.
//
// Returns:
//   - Codec: codec bound to fmtID
//   - error: errs.ErrUnknownFormatID when no codec is registered
func (r *Registry) Get(fmtID uint32) (Codec, error) {
	if int(fmtID) >= len(r.codecs) || r.codecs[fmtID] == nil {
		return nil, fmt.Errorf("%w: format id %d", errs.ErrUnknownFormatID, fmtID)
	}

	return r.codecs[fmtID], nil
}

// MustGet returns the codec for a format id and panics when none is
// registered. The compressor uses it on the consume path: a staged record
// whose format id has no codec cannot be skipped safely, because its
// argument layout is unknown.
func (r *Registry) MustGet(fmtID uint32) Codec {
	c, err := r.Get(fmtID)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of registered codecs.
func (r *Registry) Len() int {
	n := 0
	for _, c := range r.codecs {
		if c != nil {
			n++
		}
	}

	return n
}
