package colour

import (
	"fmt"
	"strings"
)

// Scheme identifies the colour-theory rule governing hue relationships
// among palette entries.
type Scheme string

const (
	SchemeMonochromatic      Scheme = "monochromatic"
	SchemeAnalogous          Scheme = "analogous"
	SchemeComplementary      Scheme = "complementary"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeTriadic            Scheme = "triadic"
	SchemeTetradic           Scheme = "tetradic"
	SchemeCustom             Scheme = "custom"
)

// Schemes returns all supported scheme kinds in display order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeMonochromatic,
		SchemeAnalogous,
		SchemeComplementary,
		SchemeSplitComplementary,
		SchemeTriadic,
		SchemeTetradic,
		SchemeCustom,
	}
}

// ParseScheme parses a scheme name, case-insensitively.
func ParseScheme(s string) (Scheme, error) {
	name := Scheme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Schemes() {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown colour scheme: %q (valid schemes: %v)", s, Schemes())
}

// FixedCount reports whether the scheme forces a specific entry count, and
// what that count is. Requests for a different count are overridden, not
// rejected.
func (s Scheme) FixedCount() (int, bool) {
	switch s {
	case SchemeSplitComplementary, SchemeTriadic:
		return 3, true
	case SchemeTetradic:
		return 4, true
	default:
		return 0, false
	}
}

// Mode is the theme mode a palette targets.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode parses a theme mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeLight):
		return ModeLight, nil
	case string(ModeDark):
		return ModeDark, nil
	}
	return "", fmt.Errorf("unknown theme mode: %q (valid modes: light, dark)", s)
}

// Opposite returns the other theme mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Entry is one palette colour plus its accessibility metadata. Contrast
// and Level are measured against the reference foreground chosen at
// construction (black or white, whichever contrasts higher) unless an
// adjustment request supplied an explicit background. Adjusted is set only
// when accessibility adjustment changed the colour.
type Entry struct {
	Colour   Colour
	Contrast float64
	Level    Level
	Adjusted *Colour
}

// NewEntry builds an entry for c with contrast metadata against the
// auto-picked black/white reference.
func NewEntry(c Colour) Entry {
	ratio := ContrastRatio(c, PickForeground(c))
	return Entry{
		Colour:   c,
		Contrast: ratio,
		Level:    LevelForRatio(ratio),
	}
}

// Value returns the adjusted colour when present, otherwise the original.
func (e Entry) Value() Colour {
	if e.Adjusted != nil {
		return *e.Adjusted
	}
	return e.Colour
}

// Palette is an ordered collection of entries. Insertion order is
// significant: index 0 is the base/primary colour by convention, index 3
// the background role.
type Palette struct {
	Scheme  Scheme
	Mode    Mode
	Entries []Entry
}

// New creates a palette from colours, computing contrast metadata for each
// entry. A nil or empty colour slice yields a valid empty palette.
func New(scheme Scheme, mode Mode, colours []Colour) *Palette {
	entries := make([]Entry, len(colours))
	for i, c := range colours {
		entries[i] = NewEntry(c)
	}
	return &Palette{Scheme: scheme, Mode: mode, Entries: entries}
}

// NewCustom wraps caller-supplied colours (image extraction or a loaded
// preset) into a palette without applying any hue math.
func NewCustom(mode Mode, colours []Colour) *Palette {
	return New(SchemeCustom, mode, colours)
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// Colours returns the effective colour of every entry, in order. Adjusted
// colours take precedence over originals.
func (p *Palette) Colours() []Colour {
	colours := make([]Colour, len(p.Entries))
	for i, e := range p.Entries {
		colours[i] = e.Value()
	}
	return colours
}

// Hex returns the effective palette colours as canonical hex strings.
func (p *Palette) Hex() []string {
	hexes := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		hexes[i] = e.Value().Hex()
	}
	return hexes
}

// Foregrounds returns a legible black/white foreground for every entry.
func (p *Palette) Foregrounds() []Colour {
	fgs := make([]Colour, len(p.Entries))
	for i, e := range p.Entries {
		fgs[i] = PickForeground(e.Value())
	}
	return fgs
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if len(p.Entries) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s palette (%s) with %d colours:\n", p.Scheme, p.Mode, len(p.Entries))
	for i, e := range p.Entries {
		fmt.Fprintf(&b, "  %2d: %s  %.1f:1 %s", i+1, e.Value().Hex(), e.Contrast, e.Level)
		if e.Adjusted != nil {
			fmt.Fprintf(&b, " (adjusted from %s)", e.Colour.Hex())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
