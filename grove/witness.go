package grove

import "fmt"

// Witness is a portable inclusion proof for one element.
//
// Siblings are ordered from the leaf's sibling upward to the sibling just
// below the root, and are empty when the element's tree has weight 1. Bit i
// of Path describes the fold at level i: 1 means the sibling lies to the
// right of the running hash and the fold computes
// HashParent(running, sibling); 0 means the sibling lies to the left and
// the fold computes HashParent(sibling, running).
type Witness struct {
	LeafHash Digest
	Siblings []Digest
	Path     uint64
}

// WellFormed reports whether the witness shape is structurally valid: at
// most MaxWitnessDepth siblings and no path bits beyond the sibling count.
func (w Witness) WellFormed() bool {
	if len(w.Siblings) > MaxWitnessDepth {
		return false
	}
	return w.Path>>uint(len(w.Siblings)) == 0
}

// clone returns a witness with its own sibling storage.
func (w Witness) clone() Witness {
	c := w
	c.Siblings = append([]Digest(nil), w.Siblings...)
	return c
}

// Witness produces an inclusion proof for element against the current
// accumulator state.
//
// The proof is built by walking the leaf's ancestry to its root, collecting
// the sibling at each level. A copy is cached on the leaf's index entry,
// replacing any previously cached witness; the returned value owns its own
// sibling storage and stays valid after later adds and after Close,
// although verification against the live accumulator fails once the leaf's
// root has been merged under a new parent.
func (a *Accumulator) Witness(element []byte) (Witness, error) {
	d, err := HashLeaf(element)
	if err != nil {
		return Witness{}, err
	}
	leaf, ok := a.tracker.lookup(d)
	if !ok {
		return Witness{}, fmt.Errorf("%w: element was never added", ErrNotFound)
	}

	w, err := a.witnessFor(leaf)
	if err != nil {
		return Witness{}, err
	}

	cached := w.clone()
	a.tracker.cacheWitness(leaf, &cached)
	return w, nil
}

func (a *Accumulator) witnessFor(leaf ref) (Witness, error) {
	t := &a.tracker
	w := Witness{LeafHash: t.nodes[leaf].digest}

	cur := leaf
	for t.nodes[cur].parent != noRef {
		if len(w.Siblings) >= MaxWitnessDepth {
			return Witness{}, fmt.Errorf(
				"%w: walked %d levels without reaching a root", ErrProofTooDeep, MaxWitnessDepth)
		}
		parent := t.nodes[cur].parent
		switch cur {
		case t.nodes[parent].left:
			w.Path |= 1 << uint(len(w.Siblings))
			w.Siblings = append(w.Siblings, t.nodes[t.nodes[parent].right].digest)
		case t.nodes[parent].right:
			w.Siblings = append(w.Siblings, t.nodes[t.nodes[parent].left].digest)
		default:
			return Witness{}, fmt.Errorf(
				"%w: parent of node %s does not link back to it", ErrMalformedTree, t.nodes[cur].digest.Abbrev())
		}
		cur = parent
	}
	return w, nil
}
