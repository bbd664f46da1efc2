package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/forestrie/go-grove/grove"
	"github.com/forestrie/go-grove/logger"
)

var countFlag = cli.IntFlag{
	Name:    "count",
	Aliases: []string{"n"},
	Usage:   "number of elements to add",
	Value:   8,
}

// demoCmd walks the accumulator lifecycle: it adds count elements one at a
// time, prints the forest structure after each add, proves and verifies
// the newest element, and shows the first element's original witness going
// stale once its tree merges again.
var demoCmd = cli.Command{
	Name:  "demo",
	Usage: "add elements one at a time, showing structure and witness lifecycle",
	Flags: []cli.Flag{
		&countFlag,
	},
	Action: func(cCtx *cli.Context) error {
		log := logger.Sugar.WithServiceName("grove-demo")
		count := cCtx.Int("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		a := grove.New()
		defer a.Close()

		var first grove.Witness
		firstElement := []byte("1")

		for i := 1; i <= count; i++ {
			element := []byte(strings.Repeat("1", i))
			if err := a.Add(element); err != nil {
				return err
			}
			fmt.Printf("Structure: %s\n", a)

			w, err := a.Witness(element)
			if err != nil {
				return err
			}
			fmt.Printf("  witness %q: depth %d path %q verify %t\n",
				element, len(w.Siblings), w.PathString(), a.Verify(w))

			if i == 1 {
				first = w
				continue
			}
			// The first witness survives adds that leave its tree alone and
			// fails once the weight 1 tree has merged under a new parent.
			fmt.Printf("  original witness for %q verify %t\n", firstElement, a.Verify(first))
		}

		log.Infof("demo complete: %d elements, %d peaks", count, len(a.Peaks()))
		return nil
	},
}
