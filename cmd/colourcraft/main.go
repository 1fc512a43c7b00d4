// colourcraft - a colour palette generator
//
// colourcraft builds five-colour palettes from colour-harmony rules or from
// the dominant colours of an image, and exports them for other tools.
package main

import (
	"os"

	"github.com/jmylchreest/colourcraft/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
