package grove

// Accumulator is an append only commitment to a growing set of elements,
// built as a forest of perfect binary hash trees. Create one with New.
//
// An Accumulator assumes a single owner: concurrent Add calls, or reads
// concurrent with an Add, require external serialization. Witness and
// Verify never mutate.
type Accumulator struct {
	tracker  tracker
	rootHead ref
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{
		tracker:  newTracker(),
		rootHead: noRef,
	}
}

// Close releases the node arena, the digest index, and every cached
// witness. The accumulator must not be used after Close. Witness values
// already returned to callers remain valid.
func (a *Accumulator) Close() {
	a.tracker.release()
	a.rootHead = noRef
}

// Remove is reserved for a future deletion witness protocol. It always
// returns ErrRemoveNotSupported and leaves the accumulator unchanged.
func (a *Accumulator) Remove(w Witness) error {
	return ErrRemoveNotSupported
}
