package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var targetFlag = cli.StringFlag{
	Name:     "target",
	Aliases:  []string{"t"},
	Usage:    "the element to prove inclusion of",
	Required: true,
}

// proveCmd builds a forest from the positional elements and prints the
// target's witness and verification result.
var proveCmd = cli.Command{
	Name:      "prove",
	Usage:     "prove one element's inclusion among the given elements",
	ArgsUsage: "element...",
	Flags: []cli.Flag{
		&targetFlag,
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

		fmt.Printf("forest: %s\n", a)
		fmt.Printf("leaf:   %s\n", w.LeafHash)
		for i, s := range w.Siblings {
			side := "left"
			if w.Path&(1<<uint(i)) != 0 {
				side = "right"
			}
			fmt.Printf("sib %2d: %s (%s)\n", i, s, side)
		}
		fmt.Printf("path:   %q\n", w.PathString())
		fmt.Printf("verify: %t\n", a.Verify(w))
		return nil
	},
}
