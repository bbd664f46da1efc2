package receipts

import (
	"github.com/fxamacker/cbor/v2"
)

// CBORCodec pairs the deterministic encode and decode modes used for every
// CBOR structure in this package. Receipts must encode deterministically so
// that a verifier rebuilding a detached payload reproduces the signed bytes
// exactly.
type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

// NewDeterministicEncOpts returns the encode options for receipt payloads
// and headers: RFC 8949 core deterministic encoding.
func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewDeterministicDecOpts returns the decode options matching
// NewDeterministicEncOpts. Unsigned integers decode as uint64.
func NewDeterministicDecOpts() cbor.DecOptions {
	return cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}
}

func NewCBORCodec(encOpts cbor.EncOptions, decOpts cbor.DecOptions) (CBORCodec, error) {
	encMode, err := encOpts.EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	decMode, err := decOpts.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{encMode: encMode, decMode: decMode}, nil
}

// NewReceiptCodec returns the codec every signer and verifier in this
// package shares.
func NewReceiptCodec() (CBORCodec, error) {
	return NewCBORCodec(NewDeterministicEncOpts(), NewDeterministicDecOpts())
}

func (c CBORCodec) MarshalCBOR(v any) ([]byte, error) {
	return c.encMode.Marshal(v)
}

func (c CBORCodec) UnmarshalInto(data []byte, v any) error {
	return c.decMode.Unmarshal(data, v)
}
