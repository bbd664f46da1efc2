package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/forestrie/go-grove/grove"
	"github.com/forestrie/go-grove/logger"
)

// Run using
//  go run ./cmd/grove <command> <flags>

var loglevelFlag = cli.StringFlag{
	Name:  "loglevel",
	Usage: "logging level (DEBUG, INFO, NOOP, ...)",
	Value: "NOOP",
}

func main() {
	app := &cli.App{
		Name:  "grove",
		Usage: "grove accumulator toolbox: add elements, prove inclusion, issue receipts",
		Flags: []cli.Flag{
			&loglevelFlag,
		},
		Before: func(cCtx *cli.Context) error {
			logger.New(cCtx.String("loglevel"))
			return nil
		},
		After: func(cCtx *cli.Context) error {
			logger.OnExit()
			return nil
		},
		Commands: []*cli.Command{
			&demoCmd,
			&proveCmd,
			&receiptCmd,
			&sealCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// accumulate builds an accumulator over the command's positional args.
func accumulate(cCtx *cli.Context) (*grove.Accumulator, error) {
	if cCtx.NArg() == 0 {
		return nil, fmt.Errorf("at least one element is required")
	}
	a := grove.New()
	for _, e := range cCtx.Args().Slice() {
		if err := a.Add([]byte(e)); err != nil {
			a.Close()
			return nil, fmt.Errorf("add %q: %w", e, err)
		}
	}
	return a, nil
}
