package receipts

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/veraison/go-cose"

	"github.com/forestrie/go-grove/grove"
)

// COSE Receipts for grove witnesses. A receipt is a COSE_Sign1 whose
// detached payload is the root digest the witness folds to; the witness
// itself travels in the unprotected header under label 396, so a verifier
// must refold it to rebuild the signed bytes.

// WitnessProof is the CBOR wire form of a grove witness.
type WitnessProof struct {
	LeafHash []byte   `cbor:"1,keyasint"`
	Siblings [][]byte `cbor:"2,keyasint,omitempty"`
	Path     uint64   `cbor:"3,keyasint,omitempty"`
}

// VerifiableWitnessProofs is the proofs bucket attached to the unprotected
// header. Receipts in this package always carry exactly one inclusion
// proof, but the wire shape permits more.
type VerifiableWitnessProofs struct {
	InclusionProofs []WitnessProof `cbor:"-1,keyasint,omitempty"`
}

// VerifiableWitnessProofsHeader provides deferred decoding of the proofs
// bucket from a receipt's raw unprotected header.
type VerifiableWitnessProofsHeader struct {
	VerifiableProofs VerifiableWitnessProofs `cbor:"396,keyasint"`
}

// NewWitnessProof converts a grove witness to its wire form.
func NewWitnessProof(w grove.Witness) WitnessProof {
	p := WitnessProof{
		LeafHash: append([]byte(nil), w.LeafHash[:]...),
		Path:     w.Path,
	}
	for _, s := range w.Siblings {
		p.Siblings = append(p.Siblings, append([]byte(nil), s[:]...))
	}
	return p
}

// Witness converts the wire form back to a grove witness, checking every
// digest is exactly 32 bytes.
func (p WitnessProof) Witness() (grove.Witness, error) {
	var w grove.Witness
	if len(p.LeafHash) != grove.DigestBytes {
		return grove.Witness{}, fmt.Errorf("%w: leaf hash is %d bytes", ErrDigestSize, len(p.LeafHash))
	}
	copy(w.LeafHash[:], p.LeafHash)
	for i, s := range p.Siblings {
		if len(s) != grove.DigestBytes {
			return grove.Witness{}, fmt.Errorf("%w: sibling %d is %d bytes", ErrDigestSize, i, len(s))
		}
		var d grove.Digest
		copy(d[:], s)
		w.Siblings = append(w.Siblings, d)
	}
	w.Path = p.Path
	return w, nil
}

// SignWitness issues a receipt for w.
//
// The signed payload is the root digest the witness folds to, and it is
// detached before the receipt is returned: a verifier can only rebuild it
// by refolding the attached proof, so the signature binds the whole path,
// not just the root.
func (rs ReceiptSigner) SignWitness(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, w grove.Witness, external []byte,
) ([]byte, error) {
	if !w.WellFormed() {
		return nil, ErrMalformedWitness
	}
	root := grove.IncludedRoot(w)

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: rs.protectedClaims(coseSigner, keyIdentifier, publicKey, subject),
			Unprotected: cose.UnprotectedHeader{
				HeaderLabelVerifiableProofs: VerifiableWitnessProofs{
					InclusionProofs: []WitnessProof{NewWitnessProof(w)},
				},
			},
		},
		Payload: root[:],
	}
	if err := msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	// Detach the payload so verifiers are forced to refold the proof.
	msg.Payload = nil
	return msg.MarshalCBOR()
}

// VerifySignedWitnessReceipt verifies a serialized witness receipt using
// the confirmation key in its own CWT claims.
//
// On success the recovered witness and the root it folds to are returned.
// A failed signature check is reported as a false result, not an error;
// errors are reserved for receipts that are structurally unusable.
func VerifySignedWitnessReceipt(
	codec CBORCodec, receiptMsg []byte,
) (bool, grove.Digest, grove.Witness, error) {

	receipt, err := NewCoseSign1MessageFromCBOR(receiptMsg)
	if err != nil {
		return false, grove.Digest{}, grove.Witness{}, err
	}

	var header VerifiableWitnessProofsHeader
	if err = codec.UnmarshalInto(receipt.Headers.RawUnprotected, &header); err != nil {
		return false, grove.Digest{}, grove.Witness{}, fmt.Errorf("%w: %v", ErrMalformedProofHeader, err)
	}
	proofs := header.VerifiableProofs.InclusionProofs
	if len(proofs) == 0 {
		return false, grove.Digest{}, grove.Witness{}, ErrProofNotPresent
	}

	w, err := proofs[0].Witness()
	if err != nil {
		return false, grove.Digest{}, grove.Witness{}, err
	}
	if !w.WellFormed() {
		return false, grove.Digest{}, grove.Witness{}, ErrMalformedWitness
	}

	root := grove.IncludedRoot(w)
	receipt.Payload = root[:]

	if err = receipt.VerifyWithCWTPublicKey(nil); err != nil {
		if errors.Is(err, cose.ErrVerification) {
			return false, grove.Digest{}, grove.Witness{}, nil
		}
		return false, grove.Digest{}, grove.Witness{}, err
	}
	return true, root, w, nil
}
