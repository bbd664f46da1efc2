package grove

import "crypto/sha256"

// HashLeaf computes the commitment for one accumulated element:
//
//	H( element )
func HashLeaf(element []byte) (Digest, error) {
	if len(element) == 0 {
		return Digest{}, ErrEmptyElement
	}
	return sha256.Sum256(element), nil
}

// HashParent computes the commitment for an internal node:
//
//	H( left[32] || right[32] )
//
// The operand order is significant. Merges always place the pre-existing
// root on the left and the carried node on the right, so a subtree digest
// depends only on the order elements were added.
func HashParent(left, right Digest) Digest {
	var pair [2 * DigestBytes]byte
	copy(pair[:DigestBytes], left[:])
	copy(pair[DigestBytes:], right[:])
	return sha256.Sum256(pair[:])
}

// DigestsEqual reports whether a and b hold identical bytes.
func DigestsEqual(a, b Digest) bool {
	return a == b
}
