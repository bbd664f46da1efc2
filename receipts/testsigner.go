package receipts

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func TestGenerateECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

func TestNewReceiptSigner(t *testing.T, issuer string) ReceiptSigner {
	codec, err := NewReceiptCodec()
	require.NoError(t, err)
	return NewReceiptSigner(issuer, codec)
}

func TestNewCoseSigner(t *testing.T, key ecdsa.PrivateKey) cose.Signer {
	signer, err := cose.NewSigner(cose.AlgorithmES256, &key)
	require.NoError(t, err)
	return signer
}
