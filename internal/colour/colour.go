// Package colour implements the huelab colour engine: the colour model,
// WCAG contrast analysis, scheme-based palette generation, accessibility
// adjustment, colour-vision-deficiency simulation, light/dark variant
// derivation and image colour extraction.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Colour is an immutable 8-bit RGB colour value. Two Colours are equal iff
// their RGB channels are equal; HSL is always derived from RGB, never
// stored, so repeated conversions cannot drift.
type Colour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// InvalidHexError reports a malformed hex colour string.
type InvalidHexError struct {
	Input string
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex colour %q (expected #RGB or #RRGGBB)", e.Input)
}

var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// ParseHex parses a hex colour string in #RGB or #RRGGBB form. The leading
// '#' is optional and hex digits are case-insensitive. Malformed input is
// rejected with an InvalidHexError, never clamped.
func ParseHex(s string) (Colour, error) {
	if !hexPattern.MatchString(s) {
		return Colour{}, &InvalidHexError{Input: s}
	}

	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		// Expand shorthand: #abc -> #aabbcc.
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Colour{}, &InvalidHexError{Input: s}
	}

	return Colour{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHex parses a known-good hex literal and panics on error.
// Intended for constants and tests.
func MustParseHex(s string) Colour {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical uppercase #RRGGBB form of the colour.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the colour as "#RRGGBB (rgb(r, g, b))".
func (c Colour) String() string {
	return fmt.Sprintf("%s (rgb(%d, %d, %d))", c.Hex(), c.R, c.G, c.B)
}

// HSL returns the derived hue (0-360, exclusive upper bound), saturation
// (0-1) and lightness (0-1) of the colour.
func (c Colour) HSL() (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic: hue and saturation are zero by convention.
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return h, s, l
}

// FromHSL builds a Colour from hue (degrees, wrapped mod 360), saturation
// and lightness (both clamped to [0,1]). Channel output is rounded half
// away from zero so repeated HSL round-trips are stable after the first.
func FromHSL(h, s, l float64) Colour {
	h = wrapHue(h)
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		v := roundChannel(l)
		return Colour{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Colour{
		R: roundChannel(hueToChannel(p, q, h+120)),
		G: roundChannel(hueToChannel(p, q, h)),
		B: roundChannel(hueToChannel(p, q, h-120)),
	}
}

// hueToChannel resolves one RGB channel from HSL intermediates.
func hueToChannel(p, q, t float64) float64 {
	t = wrapHue(t)

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}

// Lighten returns the colour with lightness increased by amount (0-1),
// clamped to the valid range. Hue and saturation are preserved.
func (c Colour) Lighten(amount float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h, s, l+amount)
}

// Darken returns the colour with lightness decreased by amount (0-1).
func (c Colour) Darken(amount float64) Colour {
	h, s, l := c.HSL()
	return FromHSL(h, s, l-amount)
}

// WithHue returns the colour rotated to the given hue in degrees,
// preserving saturation and lightness.
func (c Colour) WithHue(hue float64) Colour {
	_, s, l := c.HSL()
	return FromHSL(hue, s, l)
}

// WithSaturation returns the colour with the given saturation (0-1).
func (c Colour) WithSaturation(sat float64) Colour {
	h, _, l := c.HSL()
	return FromHSL(h, sat, l)
}

// WithLightness returns the colour with the given lightness (0-1).
func (c Colour) WithLightness(lightness float64) Colour {
	h, s, _ := c.HSL()
	return FromHSL(h, s, lightness)
}

func roundChannel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
