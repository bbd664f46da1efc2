package grove

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Abbrev renders the digest's first four bytes followed by an ellipsis,
// which is enough to tell peaks apart in demo output and logs.
func (d Digest) Abbrev() string {
	return hex.EncodeToString(d[:4]) + "..."
}

// String renders the root list largest peak first, in the form
//
//	d1e8a7c2... [size 4] -> 559aead0... [size 1]
//
// and "empty" when nothing has been added.
func (a *Accumulator) String() string {
	peaks := a.Peaks()
	if len(peaks) == 0 {
		return "empty"
	}
	parts := make([]string, 0, len(peaks))
	for _, p := range peaks {
		parts = append(parts, fmt.Sprintf("%s [size %d]", p.Hash.Abbrev(), p.Weight))
	}
	return strings.Join(parts, " -> ")
}

// PathString renders the fold directions of a witness leaf first, '1' for
// a right hand sibling and '0' for a left hand one. A weight 1 tree yields
// the empty string.
func (w Witness) PathString() string {
	var sb strings.Builder
	for i := range w.Siblings {
		if w.Path&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
