package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/veraison/go-cose"

	"github.com/forestrie/go-grove/receipts"
)

var issuerFlag = cli.StringFlag{
	Name:  "issuer",
	Usage: "issuer recorded in the receipt's CWT claims",
	Value: "grove.example",
}

var subjectFlag = cli.StringFlag{
	Name:  "subject",
	Usage: "subject recorded in the receipt's CWT claims",
	Value: "grove-attestor",
}

// ephemeralSigner generates a one-shot P-256 signing identity. The demo
// has no key storage; the confirmation key travels in the receipt itself.
func ephemeralSigner() (cose.Signer, *ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	signer, err := cose.NewSigner(cose.AlgorithmES256, key)
	if err != nil {
		return nil, nil, err
	}
	return signer, key, nil
}

// receiptCmd issues a signed COSE receipt for the target element's
// inclusion and immediately verifies it by refolding the attached proof.
var receiptCmd = cli.Command{
	Name:      "receipt",
	Usage:     "issue and verify a signed inclusion receipt for one element",
	ArgsUsage: "element...",
	Flags: []cli.Flag{
		&targetFlag,
		&issuerFlag,
		&subjectFlag,
	},
	Action: func(cCtx *cli.Context) error {
		a, err := accumulate(cCtx)
		if err != nil {
			return err
		}
		defer a.Close()

		w, err := a.Witness([]byte(cCtx.String("target")))
		if err != nil {
			return err
		}

		coseSigner, key, err := ephemeralSigner()
		if err != nil {
			return err
		}
		codec, err := receipts.NewReceiptCodec()
		if err != nil {
			return err
		}
		rs := receipts.NewReceiptSigner(cCtx.String("issuer"), codec)

		receiptMsg, err := rs.SignWitness(
			coseSigner, "ephemeral-demo-key", &key.PublicKey, cCtx.String("subject"), w, nil)
		if err != nil {
			return err
		}
		fmt.Printf("receipt: %s\n", hex.EncodeToString(receiptMsg))

		ok, root, _, err := receipts.VerifySignedWitnessReceipt(codec, receiptMsg)
		if err != nil {
			return err
		}
		fmt.Printf("root:    %s\n", root)
		fmt.Printf("verify:  %t\n", ok)
		return nil
	},
}
