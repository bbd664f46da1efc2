// COSE Sign1 ergonomics for receipts, following RFC 8152 and the CWT
// claims registration in RFC 8392 / draft-ietf-scitt-architecture.
package receipts

import (
	"crypto"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io"

	"github.com/veraison/go-cose"
)

const (
	// HeaderLabelCWTClaimsDraft is the pre-registration label some
	// issuers used for CWT claims. Read as a fallback, never written.
	HeaderLabelCWTClaimsDraft int64 = 13
	// HeaderLabelCWTClaims carries the CWT claims map in the protected
	// header.
	HeaderLabelCWTClaims int64 = 15
	// HeaderLabelVerifiableProofs is the COSE Receipts label for the
	// proofs attached to the unprotected header.
	HeaderLabelVerifiableProofs int64 = 396
)

// CWT claim keys and COSE_Key parameters used by the CNF claim.
const (
	cwtKeyIss int64 = 1
	cwtKeySub int64 = 2
	cwtKeyCNF int64 = 8

	cnfCoseKeyLabel int64 = 1

	coseKeyKty int64 = 1
	coseKeyKid int64 = 2
	coseKeyAlg int64 = 3
	coseKeyCrv int64 = -1
	coseKeyX   int64 = -2
	coseKeyY   int64 = -3

	coseKtyEC2 int64 = 2
)

// CoseSign1Message wraps the veraison message with the claim accessors the
// receipt verifiers need.
type CoseSign1Message struct {
	*cose.Sign1Message
}

// NewCoseSign1MessageFromCBOR decodes a serialized COSE_Sign1 message.
func NewCoseSign1MessageFromCBOR(message []byte) (*CoseSign1Message, error) {
	var decoded cose.Sign1Message
	if err := decoded.UnmarshalCBOR(message); err != nil {
		return nil, err
	}
	return &CoseSign1Message{Sign1Message: &decoded}, nil
}

// CWTClaims is the decoded form of the claims this package signs: who
// issued the receipt, what it is about, and the confirmation key to verify
// it with.
type CWTClaims struct {
	Issuer             string
	Subject            string
	ConfirmationMethod *ECCoseKey
}

// CWTClaimsFromProtectedHeader reads the CWT claims map from the protected
// header, preferring the registered label and falling back to the draft
// one. The confirmation key is optional; issuer and subject are not.
func (cs *CoseSign1Message) CWTClaimsFromProtectedHeader() (*CWTClaims, error) {
	raw, ok := cs.Headers.Protected[HeaderLabelCWTClaims]
	if !ok {
		raw, ok = cs.Headers.Protected[HeaderLabelCWTClaimsDraft]
	}
	if !ok {
		return nil, fmt.Errorf("%w: label %d", ErrNoProtectedHeaderValue, HeaderLabelCWTClaims)
	}

	claims, ok := raw.(map[any]any)
	if !ok {
		return nil, fmt.Errorf("%w: cwt claims are not a map", ErrProtectedHeaderType)
	}

	issuer, ok := claims[cwtKeyIss].(string)
	if !ok {
		return nil, ErrCWTClaimsNoIssuer
	}
	subject, ok := claims[cwtKeySub].(string)
	if !ok {
		return nil, ErrCWTClaimsNoSubject
	}

	cwtClaims := CWTClaims{Issuer: issuer, Subject: subject}

	key, err := cnfECCoseKey(claims)
	if err != nil {
		// cnf is optional in CWT; absence only fails verification paths
		// that need the key.
		if !errors.Is(err, ErrCWTClaimsNoCNF) {
			return nil, err
		}
		return &cwtClaims, nil
	}
	cwtClaims.ConfirmationMethod = key
	return &cwtClaims, nil
}

// SignES256 signs the message with the given ECDSA P-256 key, recording
// ES256 in the protected header.
func (cs *CoseSign1Message) SignES256(rand io.Reader, external []byte, privateKey *ecdsa.PrivateKey) error {
	signer, err := cose.NewSigner(cose.AlgorithmES256, privateKey)
	if err != nil {
		return err
	}
	if cs.Headers.Protected == nil {
		cs.Headers.Protected = make(cose.ProtectedHeader)
	}
	cs.Headers.Protected[cose.HeaderLabelAlgorithm] = cose.AlgorithmES256
	return cs.Sign(rand, external, signer)
}

// VerifyWithPublicKey verifies the message signature with the supplied key,
// taking the algorithm from the protected header.
func (cs *CoseSign1Message) VerifyWithPublicKey(publicKey crypto.PublicKey, external []byte) error {
	algorithm, err := cs.Headers.Protected.Algorithm()
	if err != nil {
		return err
	}
	verifier, err := cose.NewVerifier(algorithm, publicKey)
	if err != nil {
		return err
	}
	return cs.Verify(external, verifier)
}

// VerifyWithCWTPublicKey verifies the message using the confirmation key
// carried in its own CWT claims. The issuer claim is what ties that key
// back to an identity; callers decide whether they trust the issuer.
func (cs *CoseSign1Message) VerifyWithCWTPublicKey(external []byte) error {
	claims, err := cs.CWTClaimsFromProtectedHeader()
	if err != nil {
		return err
	}
	if claims.ConfirmationMethod == nil {
		return ErrCWTClaimsNoCNF
	}
	publicKey, err := claims.ConfirmationMethod.PublicKey()
	if err != nil {
		return err
	}
	return cs.VerifyWithPublicKey(publicKey, external)
}
