package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logpack/endian"
	"github.com/arloliu/logpack/errs"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	raw := NewRaw()
	schema := NewSchema(endian.GetLittleEndianEngine(), KindUint64)

	require.NoError(t, r.Register(1, raw))
	require.NoError(t, r.Register(7, schema))
	require.Equal(t, 2, r.Len())

	got, err := r.Get(1)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	got, err = r.Get(7)
	require.NoError(t, err)
	require.Same(t, schema, got)
}

func TestRegistry_UnknownFormatID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(2, NewRaw()))

	_, err := r.Get(3) // inside the slice, never registered
	require.ErrorIs(t, err, errs.ErrUnknownFormatID)

	_, err = r.Get(500) // beyond the slice
	require.ErrorIs(t, err, errs.ErrUnknownFormatID)
}

func TestRegistry_RejectsDuplicateAndNil(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(4, NewRaw()))

	err := r.Register(4, NewRaw())
	require.ErrorIs(t, err, errs.ErrDuplicateFormatID)

	err = r.Register(5, nil)
	require.ErrorIs(t, err, errs.ErrNilCodec)
	require.Equal(t, 1, r.Len())
}

func TestRegistry_MustGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(0, NewRaw()))

	require.NotPanics(t, func() { r.MustGet(0) })
	require.Panics(t, func() { r.MustGet(42) })
}
