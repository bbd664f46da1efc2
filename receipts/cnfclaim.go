package receipts

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/veraison/go-cose"
)

// COSE EC curve registrations, RFC 8152 table 22.
const (
	coseCurveP256 int64 = 1
	coseCurveP384 int64 = 2
	coseCurveP521 int64 = 3
)

// ECCoseKey is an EC2 COSE_Key recovered from a CNF claim, RFC 8152
// section 13.1.
type ECCoseKey struct {
	Kid   []byte
	Curve string
	X     []byte
	Y     []byte
}

// PublicKey reconstructs the ecdsa public key the COSE_Key describes.
func (k *ECCoseKey) PublicKey() (crypto.PublicKey, error) {
	publicKey := ecdsa.PublicKey{}
	switch k.Curve {
	case "P-256":
		publicKey.Curve = elliptic.P256()
	case "P-384":
		publicKey.Curve = elliptic.P384()
	case "P-521":
		publicKey.Curve = elliptic.P521()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, k.Curve)
	}
	publicKey.X = new(big.Int).SetBytes(k.X)
	publicKey.Y = new(big.Int).SetBytes(k.Y)
	return &publicKey, nil
}

// NewCNFClaim builds the CWT claims map for a receipt: issuer, subject and
// a confirmation key holding the EC2 public key receipts are verified
// against.
//
//	CWT_Claims = {
//	  1 => tstr ; iss
//	  2 => tstr ; sub
//	  8 => { 1 => COSE_Key }
//	}
func NewCNFClaim(
	issuer string, subject string, kid string, alg cose.Algorithm,
	pub ecdsa.PublicKey,
) map[int64]any {
	var crv int64
	switch pub.Curve {
	case elliptic.P256():
		crv = coseCurveP256
	case elliptic.P384():
		crv = coseCurveP384
	default:
		crv = coseCurveP521
	}
	coseKey := map[int64]any{
		coseKeyKty: coseKtyEC2,
		coseKeyKid: []byte(kid),
		coseKeyAlg: int64(alg),
		coseKeyCrv: crv,
		coseKeyX:   pub.X.Bytes(),
		coseKeyY:   pub.Y.Bytes(),
	}
	return map[int64]any{
		cwtKeyIss: issuer,
		cwtKeySub: subject,
		cwtKeyCNF: map[int64]any{cnfCoseKeyLabel: coseKey},
	}
}

// cnfECCoseKey digs the EC2 COSE_Key out of a decoded claims map. The
// shapes here are what the veraison header decoder produces: nested
// map[any]any with int64 keys.
func cnfECCoseKey(claims map[any]any) (*ECCoseKey, error) {
	rawCNF, ok := claims[cwtKeyCNF]
	if !ok {
		return nil, ErrCWTClaimsNoCNF
	}
	cnf, ok := rawCNF.(map[any]any)
	if !ok {
		return nil, fmt.Errorf("%w: cnf claim is not a map", ErrCWTClaimsMalformedCNF)
	}
	rawKey, ok := cnf[cnfCoseKeyLabel]
	if !ok {
		return nil, fmt.Errorf("%w: cnf claim carries no COSE_Key", ErrCWTClaimsMalformedCNF)
	}
	coseKey, ok := rawKey.(map[any]any)
	if !ok {
		return nil, fmt.Errorf("%w: COSE_Key is not a map", ErrCWTClaimsMalformedCNF)
	}

	kty, ok := coseKey[coseKeyKty].(int64)
	if !ok || kty != coseKtyEC2 {
		return nil, ErrUnsupportedKey
	}

	var curve string
	switch crv, _ := coseKey[coseKeyCrv].(int64); crv {
	case coseCurveP256:
		curve = "P-256"
	case coseCurveP384:
		curve = "P-384"
	case coseCurveP521:
		curve = "P-521"
	default:
		return nil, fmt.Errorf("%w: curve label %v", ErrUnknownCurve, coseKey[coseKeyCrv])
	}

	x, ok := coseKey[coseKeyX].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: x coordinate missing", ErrCWTClaimsMalformedCNF)
	}
	y, ok := coseKey[coseKeyY].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: y coordinate missing", ErrCWTClaimsMalformedCNF)
	}

	key := ECCoseKey{Curve: curve, X: x, Y: y}
	if kid, ok := coseKey[coseKeyKid].([]byte); ok {
		key.Kid = kid
	}
	return &key, nil
}
