package staging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferWith(t *testing.T, data []byte) *MemBuffer {
	t.Helper()
	buf, err := NewMemBuffer(256)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, buf.Push(data))
	}

	return buf
}

func TestRegistry_ClaimSweepsInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newBufferWith(t, []byte("aa")))
	reg.Register(newBufferWith(t, []byte("bb")))
	reg.Register(newBufferWith(t, []byte("cc")))
	require.Equal(t, 3, reg.Len())

	claim, ok := reg.Claim(0)
	require.True(t, ok)
	require.Equal(t, 0, claim.Index)
	require.Equal(t, 3, claim.Slots)
	require.Equal(t, []byte("aa"), claim.Data)

	claim, ok = reg.Claim(claim.Index + 1)
	require.True(t, ok)
	require.Equal(t, []byte("bb"), claim.Data)

	claim, ok = reg.Claim(claim.Index + 1)
	require.True(t, ok)
	require.Equal(t, []byte("cc"), claim.Data)

	// Past the end, the sweep wraps to the first slot.
	claim, ok = reg.Claim(claim.Index + 1)
	require.True(t, ok)
	require.Equal(t, 0, claim.Index)
	require.Equal(t, []byte("aa"), claim.Data)
}

func TestRegistry_ClaimEmptyRegistry(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Claim(0)
	require.False(t, ok)
}

func TestRegistry_DeadSlotDrainsBeforePrune(t *testing.T) {
	reg := NewRegistry()
	buf := newBufferWith(t, []byte("leftover"))
	handle := reg.Register(buf)

	handle.Deregister()

	// Leftover records from an exited producer must still be swept.
	claim, ok := reg.Claim(0)
	require.True(t, ok)
	require.Equal(t, []byte("leftover"), claim.Data)
	claim.Buf.Consume(len(claim.Data))

	// Drained and dead: the next sweep prunes the slot.
	_, ok = reg.Claim(0)
	require.False(t, ok)
	require.Zero(t, reg.Len())
}

func TestRegistry_PruneAdvancesToNextSlot(t *testing.T) {
	reg := NewRegistry()
	dead := reg.Register(newBufferWith(t, nil))
	reg.Register(newBufferWith(t, []byte("live")))

	dead.Deregister()

	claim, ok := reg.Claim(0)
	require.True(t, ok)
	require.Equal(t, []byte("live"), claim.Data)
	require.Equal(t, 0, claim.Index, "pruned slot's position is taken over by its successor")
	require.Equal(t, 1, claim.Slots)
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_ClaimReturnsEmptyLiveSlots(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newBufferWith(t, nil))

	// A live producer with nothing staged stays in the sweep.
	claim, ok := reg.Claim(0)
	require.True(t, ok)
	require.Empty(t, claim.Data)
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_RegisterNilPanics(t *testing.T) {
	reg := NewRegistry()
	require.Panics(t, func() { reg.Register(nil) })
}

func TestRegistry_DeregisterIdempotent(t *testing.T) {
	reg := NewRegistry()
	handle := reg.Register(newBufferWith(t, nil))

	handle.Deregister()
	handle.Deregister()

	_, ok := reg.Claim(0)
	require.False(t, ok)
}
