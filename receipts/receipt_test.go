package receipts

import (
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
	tassert "gotest.tools/v3/assert"

	"github.com/forestrie/go-grove/grove"
)

func testAccumulator(t *testing.T, elements ...string) *grove.Accumulator {
	t.Helper()
	a := grove.New()
	for _, e := range elements {
		require.NoError(t, a.Add([]byte(e)))
	}
	return a
}

func TestSignWitnessRoundTrip(t *testing.T) {
	key := TestGenerateECKey(t, elliptic.P256())
	rs := TestNewReceiptSigner(t, "synsation.org")
	coseSigner := TestNewCoseSigner(t, key)

	a := testAccumulator(t, "a", "b", "c", "d")
	w, err := a.Witness([]byte("b"))
	require.NoError(t, err)

	receiptMsg, err := rs.SignWitness(
		coseSigner, "log attestation key 1", &key.PublicKey, "grove-attestor", w, nil)
	require.NoError(t, err)

	ok, root, recovered, err := VerifySignedWitnessReceipt(rs.cborCodec, receiptMsg)
	require.NoError(t, err)
	require.True(t, ok)

	// The detached payload must refold to the current weight 4 peak.
	peaks := a.Peaks()
	require.Len(t, peaks, 1)
	require.Equal(t, peaks[0].Hash, root)

	tassert.DeepEqual(t, w, recovered)
}

func TestSignWitnessRejectsMalformedWitness(t *testing.T) {
	key := TestGenerateECKey(t, elliptic.P256())
	rs := TestNewReceiptSigner(t, "synsation.org")
	coseSigner := TestNewCoseSigner(t, key)

	a := testAccumulator(t, "a", "b")
	w, err := a.Witness([]byte("a"))
	require.NoError(t, err)

	// A path bit beyond the sibling count is not signable.
	w.Path |= 1 << 10
	_, err = rs.SignWitness(
		coseSigner, "k1", &key.PublicKey, "grove-attestor", w, nil)
	require.ErrorIs(t, err, ErrMalformedWitness)
}

// Tampering with the attached proof changes the refolded payload, so the
// signature check must fail cleanly rather than error.
func TestVerifyTamperedProof(t *testing.T) {
	type mutate func(p *WitnessProof)
	tests := []struct {
		name string
		mut  mutate
	}{
		{"flipped leaf hash bit", func(p *WitnessProof) { p.LeafHash[0] ^= 1 }},
		{"flipped sibling bit", func(p *WitnessProof) { p.Siblings[1][31] ^= 1 }},
		{"flipped path bit", func(p *WitnessProof) { p.Path ^= 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := TestGenerateECKey(t, elliptic.P256())
			rs := TestNewReceiptSigner(t, "synsation.org")
			coseSigner := TestNewCoseSigner(t, key)

			a := testAccumulator(t, "a", "b", "c", "d")
			w, err := a.Witness([]byte("b"))
			require.NoError(t, err)

			receiptMsg, err := rs.SignWitness(
				coseSigner, "k1", &key.PublicKey, "grove-attestor", w, nil)
			require.NoError(t, err)

			signed, err := NewCoseSign1MessageFromCBOR(receiptMsg)
			require.NoError(t, err)

			var header VerifiableWitnessProofsHeader
			require.NoError(t, rs.cborCodec.UnmarshalInto(signed.Headers.RawUnprotected, &header))
			tt.mut(&header.VerifiableProofs.InclusionProofs[0])

			// The raw bucket takes precedence when marshalling, so it has
			// to be dropped for the mutation to land on the wire.
			signed.Headers.RawUnprotected = nil
			signed.Headers.Unprotected = cose.UnprotectedHeader{
				HeaderLabelVerifiableProofs: header.VerifiableProofs,
			}
			tampered, err := signed.MarshalCBOR()
			require.NoError(t, err)

			ok, _, _, err := VerifySignedWitnessReceipt(rs.cborCodec, tampered)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestVerifyReceiptWithoutProof(t *testing.T) {
	key := TestGenerateECKey(t, elliptic.P256())
	coseSigner := TestNewCoseSigner(t, key)
	codec, err := NewReceiptCodec()
	require.NoError(t, err)

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				HeaderLabelCWTClaims: NewCNFClaim(
					"synsation.org", "grove-attestor", "k1", coseSigner.Algorithm(), key.PublicKey),
			},
		},
		Payload: []byte("no proofs attached"),
	}
	require.NoError(t, msg.Sign(rand.Reader, nil, coseSigner))
	encoded, err := msg.MarshalCBOR()
	require.NoError(t, err)

	_, _, _, err = VerifySignedWitnessReceipt(codec, encoded)
	require.ErrorIs(t, err, ErrProofNotPresent)
}

func TestWitnessProofDigestWidths(t *testing.T) {
	_, err := WitnessProof{LeafHash: []byte("short")}.Witness()
	require.ErrorIs(t, err, ErrDigestSize)

	leaf := make([]byte, grove.DigestBytes)
	_, err = WitnessProof{LeafHash: leaf, Siblings: [][]byte{{1, 2}}}.Witness()
	require.ErrorIs(t, err, ErrDigestSize)

	w, err := WitnessProof{LeafHash: leaf, Path: 0}.Witness()
	require.NoError(t, err)
	require.True(t, w.WellFormed())
}
