package export

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/huelab/internal/colour"
)

// renderQSS emits a Qt style sheet: variable declarations followed by
// widget styling keyed off the positional role colours.
func renderQSS(req Request) string {
	p := req.Palette
	r := paletteRoles(p)

	var b strings.Builder

	fmt.Fprintf(&b, "/* %s - Generated Theme QSS */\n\n", req.themeName())
	if req.Options.Comments {
		b.WriteString(commentHeader(req, "/*", " *", " */"))
	}

	b.WriteString("/* Color variables */\n")
	if req.Options.SemanticNames && p.Len() >= 3 {
		b.WriteString("* {\n")
		fmt.Fprintf(&b, "    --theme-name: %q;\n", req.themeName())
		fmt.Fprintf(&b, "    --color-primary: %s;\n", r.primary.Hex())
		fmt.Fprintf(&b, "    --color-secondary: %s;\n", r.secondary.Hex())
		fmt.Fprintf(&b, "    --color-accent: %s;\n", r.accent.Hex())
		fmt.Fprintf(&b, "    --color-background: %s;\n", r.background.Hex())
		fmt.Fprintf(&b, "    --color-fg-primary: %s;\n", colour.PickForeground(r.primary).Hex())
		fmt.Fprintf(&b, "    --color-fg-secondary: %s;\n", colour.PickForeground(r.secondary).Hex())
		fmt.Fprintf(&b, "    --color-fg-accent: %s;\n", colour.PickForeground(r.accent).Hex())
		fmt.Fprintf(&b, "    --color-fg-background: %s;\n", colour.PickForeground(r.background).Hex())
		b.WriteString("}\n\n")
	}

	b.WriteString("/* All palette colors */\n")
	b.WriteString("* {\n")
	fgs := p.Foregrounds()
	for i, c := range p.Colours() {
		fmt.Fprintf(&b, "    --color%d: %s;\n", i, c.Hex())
		fmt.Fprintf(&b, "    --fg-color%d: %s;\n", i, fgs[i].Hex())
	}
	b.WriteString("}\n\n")

	b.WriteString("/* Main application styling */\n")
	writeQSSWidgets(&b, r)

	return b.String()
}

// writeQSSWidgets emits widget rules for the common Qt controls, themed
// from the role colours.
func writeQSSWidgets(b *strings.Builder, r roles) {
	fgBackground := colour.PickForeground(r.background)
	fgPrimary := colour.PickForeground(r.primary)
	fgAccent := colour.PickForeground(r.accent)

	fmt.Fprintf(b, "QMainWindow, QDialog {\n    background-color: %s;\n    color: %s;\n}\n\n",
		r.background.Hex(), fgBackground.Hex())

	fmt.Fprintf(b, "QWidget {\n    background-color: %s;\n    color: %s;\n}\n\n",
		r.background.Hex(), fgBackground.Hex())

	fmt.Fprintf(b, "QPushButton {\n    background-color: %s;\n    color: %s;\n    border: none;\n    border-radius: 4px;\n    padding: 6px 12px;\n    font-weight: bold;\n}\n\n",
		r.primary.Hex(), fgPrimary.Hex())

	fmt.Fprintf(b, "QPushButton:hover {\n    background-color: %s;\n    color: %s;\n}\n\n",
		r.accent.Hex(), fgAccent.Hex())

	fmt.Fprintf(b, "QPushButton:pressed {\n    background-color: %s;\n}\n\n",
		r.primary.Darken(0.1).Hex())

	fmt.Fprintf(b, "QLineEdit, QTextEdit, QComboBox, QSpinBox {\n    background-color: %s;\n    color: %s;\n    border: 1px solid %s;\n    border-radius: 3px;\n    padding: 4px;\n}\n\n",
		r.background.Lighten(0.05).Hex(), fgBackground.Hex(), r.secondary.Hex())

	fmt.Fprintf(b, "QMenuBar, QMenu {\n    background-color: %s;\n    color: %s;\n}\n\n",
		r.background.Hex(), fgBackground.Hex())

	fmt.Fprintf(b, "QMenuBar::item:selected, QMenu::item:selected {\n    background-color: %s;\n    color: %s;\n}\n\n",
		r.primary.Hex(), fgPrimary.Hex())

	fmt.Fprintf(b, "QTabBar::tab:selected {\n    background-color: %s;\n    color: %s;\n}\n\n",
		r.primary.Hex(), fgPrimary.Hex())

	fmt.Fprintf(b, "QProgressBar::chunk {\n    background-color: %s;\n}\n\n", r.accent.Hex())

	fmt.Fprintf(b, "QScrollBar::handle {\n    background-color: %s;\n    border-radius: 4px;\n}\n",
		r.secondary.Hex())
}
