// Package staging provides the per-producer buffers that decouple logging
// threads from the persistence engine.
//
// Each producer owns one staging buffer and appends complete records to it
// without coordinating with other producers. The engine sweeps all
// registered buffers round-robin, peeks at their buffered bytes,
// compresses what fits into its output buffer, and consumes exactly the
// bytes it processed. The peek/consume split keeps the producer side
// lock-light: the engine never holds a buffer while compressing, only
// while taking or releasing a view.
//
// # Peek/Consume Contract
//
// Peek returns a read-only view of everything buffered at the time of the
// call, always ending on a record boundary because producers push whole
// records. The view stays valid until the next Consume on the same
// buffer; Consume(n) releases the first n bytes of the last view and must
// land on a record boundary.
//
// # Registry
//
// The Registry tracks every live buffer. Producers register at startup
// and deregister on shutdown; a deregistered buffer stays claimable until
// the engine has drained its leftover records, then its slot is pruned
// during a later sweep. The registry lock is held only while claiming a
// slot, never while the engine compresses.
package staging
