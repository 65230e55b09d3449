package export

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/huelab/internal/colour"
)

// renderCSS emits the palette as CSS custom properties plus a few
// component style examples wired to the semantic variables.
func renderCSS(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "/* %s - Generated CSS Theme Variables */\n\n", req.themeName())
	if req.Options.Comments {
		b.WriteString(commentHeader(req, "/*", " *", " */"))
	}

	writeCSSVariables(&b, req, req.Palette, "")
	if req.Options.IncludeBothModes {
		writeCSSVariables(&b, req, req.Dark, "dark-")
	}

	if req.Options.Comments {
		b.WriteString("/* Basic component styling examples */\n")
	}

	b.WriteString("body {\n")
	b.WriteString("    background-color: var(--color-background);\n")
	b.WriteString("    color: var(--color-text-background);\n")
	b.WriteString("    font-family: Arial, sans-serif;\n")
	b.WriteString("}\n\n")

	b.WriteString("button, .button {\n")
	b.WriteString("    background-color: var(--color-primary);\n")
	b.WriteString("    color: var(--color-text-primary);\n")
	b.WriteString("    padding: 8px 16px;\n")
	b.WriteString("    border-radius: 4px;\n")
	b.WriteString("    border: none;\n")
	b.WriteString("    font-weight: bold;\n")
	b.WriteString("}\n\n")

	b.WriteString("button:hover, .button:hover {\n")
	b.WriteString("    background-color: var(--color-accent);\n")
	b.WriteString("    color: var(--color-text-accent);\n")
	b.WriteString("}\n\n")

	b.WriteString("input, select {\n")
	b.WriteString("    background-color: var(--color-background);\n")
	b.WriteString("    color: var(--color-text-background);\n")
	b.WriteString("    border: 1px solid var(--color-secondary);\n")
	b.WriteString("    border-radius: 3px;\n")
	b.WriteString("    padding: 8px;\n")
	b.WriteString("}\n")

	return b.String()
}

// writeCSSVariables emits one :root block of indexed (and optionally
// semantic) variables for a palette. prefix scopes the dark-mode block.
func writeCSSVariables(b *strings.Builder, req Request, p *colour.Palette, prefix string) {
	selector := ":root"
	if prefix != "" {
		selector = fmt.Sprintf(":root[data-theme=%q]", strings.TrimSuffix(prefix, "-"))
	}

	fmt.Fprintf(b, "%s {\n", selector)
	fmt.Fprintf(b, "    --theme-name: %q;\n", req.themeName())

	if req.Options.SemanticNames && p.Len() >= 3 {
		r := paletteRoles(p)
		fmt.Fprintf(b, "    --color-primary: %s;\n", r.primary.Hex())
		fmt.Fprintf(b, "    --color-secondary: %s;\n", r.secondary.Hex())
		fmt.Fprintf(b, "    --color-accent: %s;\n", r.accent.Hex())
		fmt.Fprintf(b, "    --color-background: %s;\n", r.background.Hex())
		fmt.Fprintf(b, "    --color-text-primary: %s;\n", colour.PickForeground(r.primary).Hex())
		fmt.Fprintf(b, "    --color-text-secondary: %s;\n", colour.PickForeground(r.secondary).Hex())
		fmt.Fprintf(b, "    --color-text-accent: %s;\n", colour.PickForeground(r.accent).Hex())
		fmt.Fprintf(b, "    --color-text-background: %s;\n\n", colour.PickForeground(r.background).Hex())
	}

	fgs := p.Foregrounds()
	for i, c := range p.Colours() {
		fmt.Fprintf(b, "    --%scolor-%d: %s;\n", prefix, i, c.Hex())
		fmt.Fprintf(b, "    --%stext-color-%d: %s;\n", prefix, i, fgs[i].Hex())
	}

	b.WriteString("}\n\n")
}
