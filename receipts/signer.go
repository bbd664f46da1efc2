package receipts

import (
	"crypto/ecdsa"

	"github.com/veraison/go-cose"
)

// ReceiptSigner issues COSE Sign1 receipts over grove witnesses and forest
// states. The issuer string is carried in the CWT claims of everything it
// signs so verifiers can trace the confirmation key to an identity.
type ReceiptSigner struct {
	issuer    string
	cborCodec CBORCodec
}

func NewReceiptSigner(issuer string, cborCodec CBORCodec) ReceiptSigner {
	return ReceiptSigner{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// protectedClaims builds the protected header bucket common to witness and
// state receipts.
func (rs ReceiptSigner) protectedClaims(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey, subject string,
) cose.ProtectedHeader {
	return cose.ProtectedHeader{
		HeaderLabelCWTClaims: NewCNFClaim(
			rs.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
	}
}
