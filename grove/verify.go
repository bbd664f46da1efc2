package grove

// Verify reports whether w attests membership in the accumulator's current
// state.
//
// The witness shape is validated first; a malformed witness verifies false
// before any hashing happens. The fold then recomputes a running hash from
// the leaf upward, and the running hash is checked against the current
// roots after every fold, not only after the last one. A witness that is
// shorter than the element's current depth therefore still verifies when
// its partial fold lands exactly on a digest that is itself still a root,
// and extra sibling levels beyond a still-current root are never examined.
// Callers that require the witness to reach a specific peak should compare
// IncludedRoot(w) against that peak instead.
//
// Verify never modifies the accumulator.
func (a *Accumulator) Verify(w Witness) bool {
	if !w.WellFormed() {
		return false
	}

	running := w.LeafHash
	for i, sibling := range w.Siblings {
		if w.Path&(1<<uint(i)) != 0 {
			running = HashParent(running, sibling)
		} else {
			running = HashParent(sibling, running)
		}
		if a.tracker.isCurrentRoot(running) {
			return true
		}
	}
	// Decides the zero sibling case, where the leaf hash itself must be a
	// root.
	return a.tracker.isCurrentRoot(running)
}
