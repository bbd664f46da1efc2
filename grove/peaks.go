package grove

// Peak describes one current root of the forest.
type Peak struct {
	Hash   Digest
	Weight uint64
}

// Peaks lists the current roots in decreasing weight order, largest tree
// first. The weights are strictly distinct, and reading them as set bits
// gives exactly the binary representation of the number of leaves added.
// Returns nil for an empty accumulator.
func (a *Accumulator) Peaks() []Peak {
	var peaks []Peak
	for r := a.rootHead; r != noRef; r = a.tracker.nodes[r].nextRoot {
		peaks = append(peaks, Peak{
			Hash:   a.tracker.nodes[r].digest,
			Weight: a.tracker.nodes[r].weight,
		})
	}
	// The internal list is kept smallest first so the ripple merge can pop
	// equal weights off the head.
	for i, j := 0, len(peaks)-1; i < j; i, j = i+1, j-1 {
		peaks[i], peaks[j] = peaks[j], peaks[i]
	}
	return peaks
}

// LeafCount returns the number of elements added so far.
func (a *Accumulator) LeafCount() uint64 {
	var n uint64
	for r := a.rootHead; r != noRef; r = a.tracker.nodes[r].nextRoot {
		n += a.tracker.nodes[r].weight
	}
	return n
}
