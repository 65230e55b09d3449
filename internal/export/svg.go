package export

import (
	"fmt"
	"html"
	"strings"
)

// SVG swatch strip geometry.
const (
	svgWidth  = 800.0
	svgHeight = 200.0
)

// renderSVG emits the palette as an SVG swatch strip with each colour's
// hex value labelled beneath it.
func renderSVG(req Request) string {
	colours := req.Palette.Colours()

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(&b, "<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		int(svgWidth), int(svgHeight))
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(req.themeName()))
	b.WriteString("  <desc>Generated with huelab</desc>\n")

	if len(colours) > 0 {
		rectWidth := svgWidth / float64(len(colours))
		for i, c := range colours {
			x := float64(i) * rectWidth
			fmt.Fprintf(&b, "  <rect x=\"%.1f\" y=\"0\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" />\n",
				x, rectWidth, svgHeight-40, c.Hex())
			fmt.Fprintf(&b, "  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-family=\"Arial\" font-size=\"14\">%s</text>\n",
				x+rectWidth/2, svgHeight-20, c.Hex())
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}
