package grove

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestStringers(t *testing.T) {
	d := mustLeaf(t, "abc")
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", d.String())
	require.Equal(t, "ba7816bf...", d.Abbrev())
}

func TestAccumulatorString(t *testing.T) {
	a := New()
	require.Equal(t, "empty", a.String())

	mustAdd(t, a, "a", "b", "c")
	peaks := a.Peaks()
	require.Len(t, peaks, 2)

	want := fmt.Sprintf("%s [size 2] -> %s [size 1]", peaks[0].Hash.Abbrev(), peaks[1].Hash.Abbrev())
	require.Equal(t, want, a.String())
}

func TestWitnessPathString(t *testing.T) {
	require.Equal(t, "", Witness{}.PathString())
	w := Witness{Siblings: make([]Digest, 3), Path: 0b101}
	require.Equal(t, "101", w.PathString())
}
