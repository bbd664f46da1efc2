package grove

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLeaf(t *testing.T, element string) Digest {
	t.Helper()
	d, err := HashLeaf([]byte(element))
	require.NoError(t, err)
	return d
}

// The concrete four element scenario: after adding a,b,c,d the witness for
// b carries the leaf hash of a (left sibling) and the digest of the merged
// c+d subtree (right sibling).
func TestWitnessScenarioABCD(t *testing.T) {
	a := New()
	mustAdd(t, a, "a", "b", "c", "d")

	w, err := a.Witness([]byte("b"))
	require.NoError(t, err)

	ha := mustLeaf(t, "a")
	hcd := HashParent(mustLeaf(t, "c"), mustLeaf(t, "d"))

	require.Equal(t, mustLeaf(t, "b"), w.LeafHash)
	require.Equal(t, []Digest{ha, hcd}, w.Siblings)
	// b is a right child (bit 0 clear), the ab subtree is a left child of
	// the weight 4 root (bit 1 set).
	require.Equal(t, uint64(0b10), w.Path)
	require.Equal(t, "01", w.PathString())

	require.True(t, a.Verify(w))

	// A fifth element becomes a separate weight 1 root; the weight 4 tree
	// is untouched, so the witness keeps verifying.
	mustAdd(t, a, "e")
	require.True(t, a.Verify(w))
}

func TestWitnessSingleElement(t *testing.T) {
	a := New()
	mustAdd(t, a, "only")

	w, err := a.Witness([]byte("only"))
	require.NoError(t, err)
	require.Empty(t, w.Siblings)
	require.Zero(t, w.Path)

	// Zero siblings: the leaf hash itself must be a current root.
	require.True(t, a.Verify(w))
}

func TestWitnessNotFound(t *testing.T) {
	a := New()
	mustAdd(t, a, "present")

	_, err := a.Witness([]byte("absent"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWitnessEmptyElement(t *testing.T) {
	a := New()
	_, err := a.Witness(nil)
	require.ErrorIs(t, err, ErrEmptyElement)
}

// A witness captured before the element's tree merges again must fail
// until regenerated; adds that leave the tree alone do not invalidate it.
func TestWitnessStaleAfterMerge(t *testing.T) {
	a := New()
	mustAdd(t, a, "a", "b")

	w, err := a.Witness([]byte("a"))
	require.NoError(t, err)
	require.True(t, a.Verify(w))

	// c is a separate weight 1 root; the a+b tree is untouched.
	mustAdd(t, a, "c")
	require.True(t, a.Verify(w))

	// d merges everything to one weight 4 tree; the old depth 1 witness
	// now folds to a non-root intermediate digest.
	mustAdd(t, a, "d")
	require.False(t, a.Verify(w))

	fresh, err := a.Witness([]byte("a"))
	require.NoError(t, err)
	require.True(t, a.Verify(fresh))
	require.Len(t, fresh.Siblings, 2)
}

func TestWitnessMalformedTree(t *testing.T) {
	a := New()
	mustAdd(t, a, "a", "b")

	leaf, ok := a.tracker.lookup(mustLeaf(t, "a"))
	require.True(t, ok)
	parent := a.tracker.nodes[leaf].parent
	require.NotEqual(t, noRef, parent)

	// Corrupt the parent so it recognizes neither child.
	a.tracker.nodes[parent].left = parent
	a.tracker.nodes[parent].right = parent

	_, err := a.Witness([]byte("a"))
	require.ErrorIs(t, err, ErrMalformedTree)
}

func TestWitnessCachedCopyIsIndependent(t *testing.T) {
	a := New()
	mustAdd(t, a, "a", "b")

	w, err := a.Witness([]byte("a"))
	require.NoError(t, err)

	leaf, ok := a.tracker.lookup(mustLeaf(t, "a"))
	require.True(t, ok)
	cached := a.tracker.nodes[leaf].cached
	require.NotNil(t, cached)
	require.Equal(t, w, *cached)

	// The caller's witness and the cached one must not share sibling
	// storage.
	w.Siblings[0][0] ^= 1
	require.NotEqual(t, w.Siblings[0], cached.Siblings[0])

	// A fresh generation replaces the cached value wholesale.
	_, err = a.Witness([]byte("a"))
	require.NoError(t, err)
	require.NotSame(t, cached, a.tracker.nodes[leaf].cached)
}
