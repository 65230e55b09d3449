package export

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/huelab/internal/colour"
)

// Document is the canonical JSON interchange shape for a theme. It is the
// only round-trippable export format: ParseTheme reconstructs an
// equivalent palette (ordered hex colours, scheme kind, count) from it.
// The nested dark palette has the identical shape.
type Document struct {
	Name        string           `json:"name"`
	Scheme      colour.Scheme    `json:"scheme"`
	Mode        colour.Mode      `json:"mode"`
	Colours     []string         `json:"colours"`
	Foregrounds []string         `json:"foregrounds"`
	Semantic    *SemanticColours `json:"semantic,omitempty"`
	Metadata    *Metadata        `json:"metadata,omitempty"`
	DarkMode    *Document        `json:"dark_mode,omitempty"`
}

// SemanticColours names the positional role colours.
type SemanticColours struct {
	Primary        string `json:"primary"`
	Secondary      string `json:"secondary"`
	Accent         string `json:"accent"`
	Background     string `json:"background"`
	TextPrimary    string `json:"text_primary"`
	TextSecondary  string `json:"text_secondary"`
	TextAccent     string `json:"text_accent"`
	TextBackground string `json:"text_background"`
}

// Metadata carries informational fields; none are needed to rebuild the
// palette.
type Metadata struct {
	Generator  string `json:"generator"`
	BaseColour string `json:"base_colour,omitempty"`
	Date       string `json:"date_created,omitempty"`
}

// renderJSON marshals the canonical document with indentation.
func renderJSON(req Request) (string, error) {
	doc := NewDocument(req.themeName(), req.Palette)

	if req.Options.SemanticNames && req.Palette.Len() >= 3 {
		doc.Semantic = semanticColours(req.Palette)
	}
	if req.Options.Comments {
		meta := &Metadata{Generator: "huelab", Date: req.timestamp()}
		if req.Palette.Len() > 0 {
			meta.BaseColour = req.Palette.Entries[0].Value().Hex()
		}
		doc.Metadata = meta
	}
	if req.Options.IncludeBothModes {
		dark := NewDocument(req.themeName(), req.Dark)
		doc.DarkMode = &dark
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal theme: %w", err)
	}
	return string(data), nil
}

// NewDocument builds the canonical document for a palette.
func NewDocument(name string, p *colour.Palette) Document {
	fgs := p.Foregrounds()
	fgHex := make([]string, len(fgs))
	for i, fg := range fgs {
		fgHex[i] = fg.Hex()
	}
	return Document{
		Name:        name,
		Scheme:      p.Scheme,
		Mode:        p.Mode,
		Colours:     p.Hex(),
		Foregrounds: fgHex,
	}
}

func semanticColours(p *colour.Palette) *SemanticColours {
	r := paletteRoles(p)
	return &SemanticColours{
		Primary:        r.primary.Hex(),
		Secondary:      r.secondary.Hex(),
		Accent:         r.accent.Hex(),
		Background:     r.background.Hex(),
		TextPrimary:    colour.PickForeground(r.primary).Hex(),
		TextSecondary:  colour.PickForeground(r.secondary).Hex(),
		TextAccent:     colour.PickForeground(r.accent).Hex(),
		TextBackground: colour.PickForeground(r.background).Hex(),
	}
}

// Theme is the result of parsing a canonical JSON document.
type Theme struct {
	Name    string
	Palette *colour.Palette
	Dark    *colour.Palette
}

// ParseTheme parses a canonical JSON export back into an equivalent
// palette (and nested dark palette when present). Colour values are
// validated strictly; a malformed hex fails the whole parse.
func ParseTheme(data []byte) (*Theme, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	palette, err := documentPalette(&doc)
	if err != nil {
		return nil, err
	}

	theme := &Theme{Name: doc.Name, Palette: palette}
	if doc.DarkMode != nil {
		dark, err := documentPalette(doc.DarkMode)
		if err != nil {
			return nil, err
		}
		theme.Dark = dark
	}
	return theme, nil
}

func documentPalette(doc *Document) (*colour.Palette, error) {
	scheme := doc.Scheme
	if scheme == "" {
		scheme = colour.SchemeCustom
	} else if _, err := colour.ParseScheme(string(scheme)); err != nil {
		return nil, err
	}

	mode := doc.Mode
	if mode == "" {
		mode = colour.ModeLight
	} else if _, err := colour.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	colours := make([]colour.Colour, len(doc.Colours))
	for i, hex := range doc.Colours {
		c, err := colour.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme colour %d: %w", i, err)
		}
		colours[i] = c
	}

	return colour.New(scheme, mode, colours), nil
}
