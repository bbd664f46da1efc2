package grove

/*

# Grove accumulator primitives for Forestrie

This package implements an in-memory cryptographic accumulator as a forest
of perfect binary hash trees, the classic Merkle Mountain Range shape. The
set of accumulated elements is never materialized; only the tree roots and
a digest index are retained, yet additions and inclusion proofs both run in
O(log n).

It follows the same style as the other Forestrie index structures:

- small, composable functions
- arena storage with index handles rather than pointers
- a burden of knowledge on the caller for hot paths

## Shape

The forest always holds one perfect tree per set bit of the leaf count.
After seven additions the roots have weights 4, 2 and 1:

	        abcd
	       /    \
	      ab     cd      ef
	     /  \   /  \    /  \
	    a    b c    d  e    f   g

Adding an eighth element h ripples exactly like incrementing a binary
counter: h merges with g, gh merges with ef, efgh merges with abcd, and a
single weight 8 root remains. Each merge hashes

	HashParent(existingRoot, carried)

with the pre-existing root on the left, so every digest is determined by
the order elements were added.

## Node ownership

Every node ever created is owned by the accumulator's tracker: an arena
indexed by digest through a chained hash table. Merging a root under a new
parent does not remove it from the index. That retention is what makes
witness generation input driven: the element digest is looked up directly
and its ancestry walked, with no forest traversal.

## Witnesses

A witness is (leaf hash, sibling digests leaf to root, path bits). Bit i of
the path tells the verifier which side the level i sibling is on. A witness
verifies against the accumulator's *current* state: the fold is checked
against the current roots after every level, so a witness captured before
its tree merged again fails until regenerated, while one whose partial fold
lands on a digest that is still a root succeeds early. See Verify for the
exact contract.

## Bounds

Proof depth is capped at MaxWitnessDepth (63) levels, bounding individual
tree weights to 2^63 leaves. The arena addresses nodes with 32 bit handles;
exhausting that space reports ErrAllocationFailed and leaves the
accumulator unchanged.

*/
