package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal previews.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured block for a colour, width characters
// wide, for terminal display.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with text overlaid in a legible
// black or white foreground.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := PickForeground(c)

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return fmt.Sprintf("%s%d;%d;%d%s%s%d;%d;%d%s%s%s",
		ansiBgPrefix, c.R, c.G, c.B, ansiSuffix,
		ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix,
		text, ansiReset)
}
