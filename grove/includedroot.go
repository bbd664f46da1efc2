package grove

// IncludedRoot folds w to completion and returns the root digest the
// witness commits to. Unlike Verify it ignores accumulator state entirely,
// so the result is only meaningful to a caller holding an authoritative
// root, such as a receipt verifier. The caller is expected to have checked
// WellFormed.
func IncludedRoot(w Witness) Digest {
	root := w.LeafHash
	for i, sibling := range w.Siblings {
		if w.Path&(1<<uint(i)) != 0 {
			root = HashParent(root, sibling)
		} else {
			root = HashParent(sibling, root)
		}
	}
	return root
}
