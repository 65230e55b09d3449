// Command huelab is a colour-theory palette generator: it derives palettes
// from colour schemes, adjusts them for WCAG contrast, simulates colour
// vision deficiencies, extracts colours from images and exports themes.
package main

import "github.com/jmylchreest/huelab/internal/cli"

func main() {
	cli.Execute()
}
