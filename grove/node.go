package grove

// node is a vertex in the forest. Nodes live in the tracker's arena and
// reference one another by arena index, never by pointer, so merges cannot
// dangle and teardown is dropping the arena.
type node struct {
	digest Digest

	// weight is the count of leaves the node subsumes. Always a power of
	// two; 1 for leaves.
	weight uint64

	// parent is noRef exactly while the node is a current root or is staged
	// but not yet linked.
	parent ref

	// left and right are both set for internal nodes and both noRef for
	// leaves.
	left  ref
	right ref

	// next chains the node into its tracker bucket.
	next ref

	// nextRoot chains the node into the root list. Meaningful only while
	// parent is noRef and the node has been published as a root.
	nextRoot ref

	// cached holds the most recently generated witness for the node. It is
	// replaced wholesale whenever a fresh witness is computed and is never
	// consulted to answer a witness request.
	cached *Witness
}
