package grove

// mergePair records one staged ripple merge step until it is safe to link.
type mergePair struct {
	left, right, parent ref
}

// Add incorporates one element into the accumulator.
//
// The element is hashed into a weight 1 leaf, then equal weight roots merge
// pairwise, exactly as a carry ripples through a binary counter: while the
// root list head matches the carried node's weight the head is popped and
// the carry continues with
//
//	HashParent(existingRoot, carried)
//
// so the existing root always takes the left operand position. The surviving
// carried node becomes the new head.
//
// Node records are created and indexed as the merge is staged, but no
// existing node and no part of the root list is modified until every record
// the add needs exists. A failed add therefore leaves the previous
// accumulator state fully intact; records staged before the failure stay in
// the index as inert, unreachable nodes.
func (a *Accumulator) Add(element []byte) error {
	d, err := HashLeaf(element)
	if err != nil {
		return err
	}

	carried, err := a.tracker.newNode(d, 1)
	if err != nil {
		return err
	}

	var pairs []mergePair
	next := a.rootHead
	for next != noRef && a.tracker.nodes[next].weight == a.tracker.nodes[carried].weight {
		parentDigest := HashParent(a.tracker.nodes[next].digest, a.tracker.nodes[carried].digest)
		parent, err := a.tracker.newNode(parentDigest, 2*a.tracker.nodes[next].weight)
		if err != nil {
			return err
		}
		pairs = append(pairs, mergePair{left: next, right: carried, parent: parent})
		carried = parent
		next = a.tracker.nodes[next].nextRoot
	}

	// Nothing below can fail. Link the staged parents, then publish the
	// carried node as the new head ahead of the first unmerged root.
	for _, p := range pairs {
		a.tracker.nodes[p.parent].left = p.left
		a.tracker.nodes[p.parent].right = p.right
		a.tracker.nodes[p.left].parent = p.parent
		a.tracker.nodes[p.right].parent = p.parent
	}
	a.tracker.nodes[carried].nextRoot = next
	a.rootHead = carried
	return nil
}
