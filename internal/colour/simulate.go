package colour

import (
	"fmt"
	"strings"
)

// Deficiency identifies a colour-vision-deficiency simulation kind.
type Deficiency string

const (
	// DeficiencyNone is normal vision; simulation is the identity.
	DeficiencyNone Deficiency = "none"
	// DeficiencyProtanopia simulates red-blindness.
	DeficiencyProtanopia Deficiency = "protanopia"
	// DeficiencyDeuteranopia simulates green-blindness.
	DeficiencyDeuteranopia Deficiency = "deuteranopia"
	// DeficiencyTritanopia simulates blue-blindness.
	DeficiencyTritanopia Deficiency = "tritanopia"
	// DeficiencyGrayscale replicates WCAG luminance across all channels.
	DeficiencyGrayscale Deficiency = "grayscale"
)

// Deficiencies returns all supported simulation kinds.
func Deficiencies() []Deficiency {
	return []Deficiency{
		DeficiencyNone,
		DeficiencyProtanopia,
		DeficiencyDeuteranopia,
		DeficiencyTritanopia,
		DeficiencyGrayscale,
	}
}

// ParseDeficiency parses a deficiency name, case-insensitively.
func ParseDeficiency(s string) (Deficiency, error) {
	name := Deficiency(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Deficiencies() {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown vision deficiency: %q (valid kinds: %v)", s, Deficiencies())
}

// Dichromacy transform matrices, applied to linear RGB.
var (
	protanopiaMatrix = [3][3]float64{
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	}
	deuteranopiaMatrix = [3][3]float64{
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	}
	tritanopiaMatrix = [3][3]float64{
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	}
)

// Simulate maps a colour through the given colour-vision-deficiency
// transform. The matrix is applied in linear (gamma-expanded) RGB space
// and the result compressed back to sRGB.
func Simulate(c Colour, kind Deficiency) Colour {
	var m [3][3]float64
	switch kind {
	case DeficiencyProtanopia:
		m = protanopiaMatrix
	case DeficiencyDeuteranopia:
		m = deuteranopiaMatrix
	case DeficiencyTritanopia:
		m = tritanopiaMatrix
	case DeficiencyGrayscale:
		v := gammaCompress(Luminance(c))
		ch := roundChannel(v)
		return Colour{R: ch, G: ch, B: ch}
	default:
		return c
	}

	r := gammaExpand(float64(c.R) / 255.0)
	g := gammaExpand(float64(c.G) / 255.0)
	b := gammaExpand(float64(c.B) / 255.0)

	out := [3]float64{
		m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b,
	}

	return Colour{
		R: roundChannel(gammaCompress(clamp01(out[0]))),
		G: roundChannel(gammaCompress(clamp01(out[1]))),
		B: roundChannel(gammaCompress(clamp01(out[2]))),
	}
}

// SimulatePalette returns a parallel simulated view of the palette for
// preview purposes. The source palette is never mutated; contrast metadata
// is recomputed for the simulated colours.
func SimulatePalette(p *Palette, kind Deficiency) *Palette {
	if kind == DeficiencyNone {
		out := New(p.Scheme, p.Mode, p.Colours())
		return out
	}

	colours := make([]Colour, len(p.Entries))
	for i, e := range p.Entries {
		colours[i] = Simulate(e.Value(), kind)
	}
	return New(p.Scheme, p.Mode, colours)
}
