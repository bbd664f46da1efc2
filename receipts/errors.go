package receipts

import "errors"

var (
	ErrMalformedWitness     = errors.New("receipts: witness shape is not valid")
	ErrMalformedProofHeader = errors.New("receipts: receipt proof header malformed")
	ErrProofNotPresent      = errors.New("receipts: witness proof not present in receipt")
	ErrDigestSize           = errors.New("receipts: digest is not 32 bytes")
	ErrPeaksMissing         = errors.New("receipts: the peaks field of a state struct was nil when it should have been provided")
)

var (
	ErrNoProtectedHeaderValue = errors.New("receipts: expected value missing from the protected header")
	ErrProtectedHeaderType    = errors.New("receipts: protected header value has an unexpected type")
	ErrCWTClaimsNoIssuer      = errors.New("receipts: cwt claims has no issuer")
	ErrCWTClaimsNoSubject     = errors.New("receipts: cwt claims has no subject")
	ErrCWTClaimsNoCNF         = errors.New("receipts: cwt claims has no confirmation key")
	ErrCWTClaimsMalformedCNF  = errors.New("receipts: cwt claims confirmation key malformed")
	ErrUnsupportedKey         = errors.New("receipts: confirmation key is not an EC2 cose key")
	ErrUnknownCurve           = errors.New("receipts: confirmation key names an unknown curve")
)
