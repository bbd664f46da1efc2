package grove

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, a *Accumulator, elements ...string) {
	t.Helper()
	for _, e := range elements {
		require.NoError(t, a.Add([]byte(e)))
	}
}

func peakWeights(a *Accumulator) []uint64 {
	var weights []uint64
	for _, p := range a.Peaks() {
		weights = append(weights, p.Weight)
	}
	return weights
}

func TestAddCounterInvariant(t *testing.T) {
	type args struct {
		adds int
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		{"one add gives a single weight 1 root", args{1}, []uint64{1}},
		{"two adds merge to a single weight 2 root", args{2}, []uint64{2}},
		{"three adds give weights 2,1", args{3}, []uint64{2, 1}},
		{"four adds collapse to a single weight 4 root", args{4}, []uint64{4}},
		{"five adds give weights 4,1", args{5}, []uint64{4, 1}},
		{"six adds give weights 4,2", args{6}, []uint64{4, 2}},
		{"seven adds give weights 4,2,1", args{7}, []uint64{4, 2, 1}},
		{"eight adds collapse to a single weight 8 root", args{8}, []uint64{8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			for i := 0; i < tt.args.adds; i++ {
				require.NoError(t, a.Add([]byte(fmt.Sprintf("element %d", i))))
			}
			require.Equal(t, tt.want, peakWeights(a))
			require.Equal(t, uint64(tt.args.adds), a.LeafCount())
		})
	}
}

func TestAddDeterminism(t *testing.T) {
	elements := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	a := New()
	b := New()
	mustAdd(t, a, elements...)
	mustAdd(t, b, elements...)

	require.Equal(t, a.Peaks(), b.Peaks())
}

func TestAddRootDigest(t *testing.T) {
	a := New()
	mustAdd(t, a, "a", "b", "c", "d")

	ha, err := HashLeaf([]byte("a"))
	require.NoError(t, err)
	hb, err := HashLeaf([]byte("b"))
	require.NoError(t, err)
	hc, err := HashLeaf([]byte("c"))
	require.NoError(t, err)
	hd, err := HashLeaf([]byte("d"))
	require.NoError(t, err)

	want := HashParent(HashParent(ha, hb), HashParent(hc, hd))

	peaks := a.Peaks()
	require.Len(t, peaks, 1)
	require.Equal(t, want, peaks[0].Hash)
	require.Equal(t, uint64(4), peaks[0].Weight)
}

func TestAddEmptyElement(t *testing.T) {
	a := New()
	mustAdd(t, a, "a")

	err := a.Add(nil)
	require.ErrorIs(t, err, ErrEmptyElement)

	// The failed add must leave the prior state untouched.
	require.Equal(t, []uint64{1}, peakWeights(a))
	require.Equal(t, uint64(1), a.LeafCount())
}

func TestAddDuplicateElements(t *testing.T) {
	a := New()
	mustAdd(t, a, "x", "x")

	hx, err := HashLeaf([]byte("x"))
	require.NoError(t, err)

	peaks := a.Peaks()
	require.Len(t, peaks, 1)
	require.Equal(t, HashParent(hx, hx), peaks[0].Hash)
	require.Equal(t, uint64(2), peaks[0].Weight)

	// The duplicate still proves and verifies.
	w, err := a.Witness([]byte("x"))
	require.NoError(t, err)
	require.True(t, a.Verify(w))
}

func TestAddMergeUsesExistingRootAsLeftOperand(t *testing.T) {
	a := New()
	mustAdd(t, a, "first", "second")

	h1, err := HashLeaf([]byte("first"))
	require.NoError(t, err)
	h2, err := HashLeaf([]byte("second"))
	require.NoError(t, err)

	peaks := a.Peaks()
	require.Len(t, peaks, 1)
	require.Equal(t, HashParent(h1, h2), peaks[0].Hash)
	require.NotEqual(t, HashParent(h2, h1), peaks[0].Hash)
}
