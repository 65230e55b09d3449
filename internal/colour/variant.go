package colour

import "math"

// BackgroundIndex is the entry treated as the background role when the
// palette is long enough, by position convention.
const BackgroundIndex = 3

// Variant lightness targets. The background entry is forced toward the
// extreme of the target mode's range with its saturation capped; the first
// three role entries land on fixed legibility bands.
const (
	darkBackgroundLightness  = 0.1
	lightBackgroundLightness = 0.93
	backgroundSaturationCap  = 0.3
)

// DeriveVariant derives a counterpart palette for the target theme mode.
// It is a one-shot pure function: the result holds no reference to the
// source and the source is not mutated, so two variants can never trigger
// recomputation of each other. Hue is preserved for every non-background
// entry; contrast metadata is recomputed for the derived colours.
func DeriveVariant(p *Palette, target Mode) *Palette {
	colours := make([]Colour, len(p.Entries))
	for i, e := range p.Entries {
		colours[i] = variantColour(e.Value(), i, target)
	}

	out := New(p.Scheme, target, colours)
	return out
}

// variantColour maps one entry colour into the target mode's lightness
// range based on its positional role.
func variantColour(c Colour, index int, target Mode) Colour {
	h, s, l := c.HSL()

	if target == ModeDark {
		switch index {
		case 0:
			l = pick(l < 0.5, 0.7, 0.3)
		case 1:
			l = pick(l < 0.5, 0.6, 0.4)
		case 2:
			l = pick(l < 0.5, 0.8, 0.75)
		case BackgroundIndex:
			l = darkBackgroundLightness
			s = math.Min(s, backgroundSaturationCap)
		default:
			l = 1 - l
		}
		return FromHSL(h, s, l)
	}

	switch index {
	case 0, 1, 2:
		// Invert around the midpoint but stay in a band that remains
		// legible on a light background.
		l = math.Max(0.25, math.Min(0.65, 1-l))
	case BackgroundIndex:
		l = lightBackgroundLightness
		s = math.Min(s, backgroundSaturationCap)
	default:
		l = 1 - l
	}
	return FromHSL(h, s, l)
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
