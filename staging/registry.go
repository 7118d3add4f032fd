package staging

import "sync"

// Registry tracks every staging buffer the engine should sweep.
//
// Registration order is sweep order. Slots of deregistered producers stay
// claimable until drained; the sweep prunes them once they are both dead
// and empty, so records staged right before a producer exits are never
// lost.
type Registry struct {
	mu    sync.Mutex
	slots []*slot
}

type slot struct {
	buf  Buffer
	dead bool
}

// Registration is a producer's handle on its registry slot.
type Registration struct {
	reg *Registry
	s   *slot
}

// Claim is one swept slot: the buffer to consume from and the peeked view
// to compress. Index and Slots let the sweeper resume after this slot and
// detect when a full pass over the registry has completed.
type Claim struct {
	Buf   Buffer
	Data  []byte
	Index int
	Slots int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a buffer to the sweep. Producers call it once at startup
// and keep the returned handle for Deregister.
//
// Panics on a nil buffer; registering nothing is a programming error.
func (r *Registry) Register(buf Buffer) *Registration {
	if buf == nil {
		panic("staging: register nil buffer")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := &slot{buf: buf}
	r.slots = append(r.slots, s)

	return &Registration{reg: r, s: s}
}

// Deregister marks the producer's slot dead. The buffer remains claimable
// until the sweep finds it empty, then its slot is pruned. Safe to call
// more than once.
func (reg *Registration) Deregister() {
	reg.reg.mu.Lock()
	defer reg.reg.mu.Unlock()

	reg.s.dead = true
}

// Claim returns the slot at position pos, wrapping past the end of the
// slot list. Dead slots found empty at pos are pruned in place before
// claiming, so the sweep retires them without a separate cleanup pass.
//
// The registry lock is held only inside this call; compressing the
// returned view happens lock-free.
//
// Returns:
//   - Claim: buffer handle, peeked view (may be empty), slot index, and
//     the live slot count at claim time
//   - bool: false when the registry has no slots left
func (r *Registry) Claim(pos int) (Claim, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.slots) > 0 {
		if pos < 0 || pos >= len(r.slots) {
			pos = 0
		}

		s := r.slots[pos]
		data := s.buf.Peek()
		if s.dead && len(data) == 0 {
			r.slots = append(r.slots[:pos], r.slots[pos+1:]...)

			continue // pos now points at the slot that followed
		}

		return Claim{Buf: s.buf, Data: data, Index: pos, Slots: len(r.slots)}, true
	}

	return Claim{}, false
}

// Len returns the number of slots still in the sweep, including dead
// slots that have not drained yet.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.slots)
}
