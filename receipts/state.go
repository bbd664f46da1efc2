package receipts

import (
	"crypto/ecdsa"
	"crypto/rand"

	"github.com/veraison/go-cose"

	"github.com/forestrie/go-grove/grove"
)

// ForestState is the signed commitment to a whole accumulator state: the
// leaf count fixes the peak weights, the peaks fix the content. Any later
// state of the same forest can reproduce these peaks, so old checkpoints
// remain verifiable against a grown log.
type ForestState struct {
	LeafCount uint64 `cbor:"1,keyasint"`

	// Peaks holds the current root digests, largest tree first. Detached
	// from published checkpoints; verifiers must recover the peaks from
	// the accumulator at LeafCount.
	Peaks [][]byte `cbor:"2,keyasint,omitempty"`

	// Timestamp is the unix time (milliseconds) read when the state was
	// signed. Including it allows the same state to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
}

// NewForestState captures the accumulator's current peaks for signing.
func NewForestState(a *grove.Accumulator, timestamp int64) ForestState {
	state := ForestState{
		LeafCount: a.LeafCount(),
		Timestamp: timestamp,
	}
	for _, p := range a.Peaks() {
		state.Peaks = append(state.Peaks, append([]byte(nil), p.Hash[:]...))
	}
	return state
}

// PeakDigests converts the wire peaks back to grove digests, checking
// widths.
func (s ForestState) PeakDigests() ([]grove.Digest, error) {
	var peaks []grove.Digest
	for _, p := range s.Peaks {
		if len(p) != grove.DigestBytes {
			return nil, ErrDigestSize
		}
		var d grove.Digest
		copy(d[:], p)
		peaks = append(peaks, d)
	}
	return peaks, nil
}

// SignState signs a checkpoint of the forest state.
//
// The peaks are removed from the published payload after signing, so a
// checkpoint can only be verified by recovering the peaks from an
// accumulator holding LeafCount leaves and restoring them with
// VerifySignedState.
func (rs ReceiptSigner) SignState(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, state ForestState, external []byte,
) ([]byte, error) {
	if state.Peaks == nil {
		return nil, ErrPeaksMissing
	}

	payload, err := rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: rs.protectedClaims(coseSigner, keyIdentifier, publicKey, subject),
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	// Publish with the peaks detached.
	state.Peaks = nil
	if msg.Payload, err = rs.cborCodec.MarshalCBOR(state); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// DecodeSignedState decodes a published checkpoint. The returned state
// carries no peaks and will not verify until the caller restores them; see
// VerifySignedState.
func DecodeSignedState(codec CBORCodec, msg []byte) (*CoseSign1Message, ForestState, error) {
	signed, err := NewCoseSign1MessageFromCBOR(msg)
	if err != nil {
		return nil, ForestState{}, err
	}
	var unverified ForestState
	if err = codec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, ForestState{}, err
	}
	return signed, unverified, nil
}

// VerifySignedState restores the supplied state as the payload of the
// signed checkpoint and verifies the result with the confirmation key in
// the CWT claims.
//
// Verification of a published checkpoint is a three step process: decode
// it with DecodeSignedState, recover the peaks of an accumulator holding
// state.LeafCount leaves, set them on the state, and call this function.
func VerifySignedState(
	codec CBORCodec, signed *CoseSign1Message, state ForestState, external []byte,
) error {
	if state.Peaks == nil {
		return ErrPeaksMissing
	}
	var err error
	if signed.Payload, err = codec.MarshalCBOR(state); err != nil {
		return err
	}
	return signed.VerifyWithCWTPublicKey(external)
}
