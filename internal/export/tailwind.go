package export

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/huelab/internal/colour"
)

// renderTailwind emits a Tailwind-shaped nested configuration object
// extending the theme's colour table.
func renderTailwind(req Request) string {
	p := req.Palette

	var b strings.Builder

	fmt.Fprintf(&b, "// %s - Tailwind Config\n\n", req.themeName())
	if req.Options.Comments {
		b.WriteString(commentHeader(req, "/**", " *", " */"))
	}

	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")

	if req.Options.SemanticNames && p.Len() >= 3 {
		r := paletteRoles(p)
		fmt.Fprintf(&b, "        primary: '%s',\n", r.primary.Hex())
		fmt.Fprintf(&b, "        secondary: '%s',\n", r.secondary.Hex())
		fmt.Fprintf(&b, "        accent: '%s',\n", r.accent.Hex())
		fmt.Fprintf(&b, "        background: '%s',\n", r.background.Hex())
	}

	writeTailwindScale(&b, slug(req.themeName()), p)
	if req.Options.IncludeBothModes {
		writeTailwindScale(&b, slug(req.themeName())+"_dark", req.Dark)
	}

	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("  plugins: [],\n")
	b.WriteString("};\n")

	return b.String()
}

func writeTailwindScale(b *strings.Builder, key string, p *colour.Palette) {
	fmt.Fprintf(b, "        %s: {\n", key)
	for i, c := range p.Colours() {
		fmt.Fprintf(b, "          %d: '%s',\n", i, c.Hex())
	}
	b.WriteString("        },\n")
}
