// Package export renders palettes into text formats: Qt style sheets,
// CSS custom properties, Tailwind configuration, SVG swatch strips and a
// canonical JSON document that parses back into an equivalent palette.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmylchreest/huelab/internal/colour"
)

// Format is a closed set of output formats. Every format implements the
// same render contract and is selected through a single exhaustive
// switch in Render, so adding a format is a localized change.
type Format string

const (
	FormatQSS      Format = "qss"
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
	FormatSVG      Format = "svg"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatQSS, FormatCSS, FormatTailwind, FormatJSON, FormatSVG}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown export format: %q (valid formats: %v)", s, Formats())
}

// Options toggles optional sections of the rendered output.
type Options struct {
	// Comments adds a generated-by header with theme metadata.
	Comments bool
	// SemanticNames maps palette roles (primary, secondary, accent,
	// background) to named variables alongside the indexed ones.
	SemanticNames bool
	// IncludeBothModes emits the light and dark palettes under
	// mode-scoped keys. Requires Request.Dark.
	IncludeBothModes bool
}

// Request carries everything a render needs.
type Request struct {
	Palette   *colour.Palette
	Dark      *colour.Palette
	ThemeName string
	Format    Format
	Options   Options

	// now overrides the header timestamp in tests; nil means time.Now.
	now func() time.Time
}

// Validate checks the request for renderability.
func (r Request) Validate() error {
	if r.Palette == nil {
		return fmt.Errorf("export request has no palette")
	}
	if r.Options.IncludeBothModes && r.Dark == nil {
		return fmt.Errorf("export with both modes requires a dark palette: derive one first")
	}
	return nil
}

// Render serializes the request's palette into the requested format.
func Render(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	switch req.Format {
	case FormatQSS:
		return renderQSS(req), nil
	case FormatCSS:
		return renderCSS(req), nil
	case FormatTailwind:
		return renderTailwind(req), nil
	case FormatJSON:
		return renderJSON(req)
	case FormatSVG:
		return renderSVG(req), nil
	default:
		return "", fmt.Errorf("unknown export format: %q (valid formats: %v)", req.Format, Formats())
	}
}

func (r Request) themeName() string {
	if r.ThemeName == "" {
		return "Theme"
	}
	return r.ThemeName
}

func (r Request) timestamp() string {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	return now().Format("2006-01-02 15:04")
}

// roles resolves the positional role colours of a palette with the same
// fallbacks for short palettes throughout: secondary falls back to
// primary, accent to secondary, background to white.
type roles struct {
	primary, secondary, accent, background colour.Colour
}

func paletteRoles(p *colour.Palette) roles {
	colours := p.Colours()

	r := roles{
		primary:    colour.Colour{R: 255, G: 255, B: 255},
		background: colour.Colour{R: 255, G: 255, B: 255},
	}
	if len(colours) > 0 {
		r.primary = colours[0]
	}
	r.secondary = r.primary
	if len(colours) > 1 {
		r.secondary = colours[1]
	}
	r.accent = r.secondary
	if len(colours) > 2 {
		r.accent = colours[2]
	}
	if len(colours) > colour.BackgroundIndex {
		r.background = colours[colour.BackgroundIndex]
	}
	return r
}

// commentHeader builds the shared metadata header block. open and close
// are the comment delimiters of the target language.
func commentHeader(req Request, open, line, close string) string {
	p := req.Palette

	var b strings.Builder
	b.WriteString(open + "\n")
	fmt.Fprintf(&b, "%s Theme: %s\n", line, req.themeName())
	fmt.Fprintf(&b, "%s Generated with huelab\n", line)
	if p.Len() > 0 {
		fmt.Fprintf(&b, "%s Base colour: %s\n", line, p.Entries[0].Value().Hex())
	}
	fmt.Fprintf(&b, "%s Scheme: %s\n", line, p.Scheme)
	if p.Len() > 0 {
		fmt.Fprintf(&b, "%s WCAG: %s\n", line, paletteLevel(p))
	}
	fmt.Fprintf(&b, "%s Date: %s\n", line, req.timestamp())
	b.WriteString(close + "\n\n")
	return b.String()
}

// paletteLevel is the conformance level the whole palette reaches: the
// weakest level among its entries.
func paletteLevel(p *colour.Palette) colour.Level {
	level := colour.LevelAAA
	for _, e := range p.Entries {
		if e.Level.MinRatio() < level.MinRatio() {
			level = e.Level
		}
	}
	return level
}

// slug lowercases a theme name into an identifier-safe key.
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
