package grove

import "errors"

// DigestBytes is the fixed width of element and node digests.
const DigestBytes = 32

// Digest is a 32 byte commitment to an element or a subtree.
type Digest [DigestBytes]byte

// MaxWitnessDepth bounds the ancestry walk and the sibling path length of a
// witness. Tree weights are therefore bounded by 2^63.
const MaxWitnessDepth = 63

// ref is a node arena record index.
type ref uint32

const noRef = ^ref(0)

var (
	ErrEmptyElement       = errors.New("grove: element bytes must not be empty")
	ErrAllocationFailed   = errors.New("grove: node storage cannot grow further")
	ErrNotFound           = errors.New("grove: no node recorded for digest")
	ErrProofTooDeep       = errors.New("grove: ancestry exceeds the maximum witness depth")
	ErrMalformedTree      = errors.New("grove: node is not a child of its recorded parent")
	ErrRemoveNotSupported = errors.New("grove: deletion witnesses are not supported")
)
