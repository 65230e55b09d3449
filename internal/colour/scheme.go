package colour

import (
	"math/rand"
)

// Palette generation defaults and bounds.
const (
	// DefaultBaseHex is the base colour used when none is supplied.
	DefaultBaseHex = "#3498DB"

	// MinCount and MaxCount bound the requested palette size. Requests
	// outside the range are clamped, not rejected.
	MinCount = 2
	MaxCount = 12

	// DefaultCount is the palette size used when none is requested.
	DefaultCount = 5
)

// Scheme generation constants. Monochromatic sweeps a 0.5-wide lightness
// band centred on the base, clamped away from pure black and white;
// analogous spreads hues across a 60 degree arc centred on the base.
const (
	monoLightnessSpan = 0.5
	monoLightnessMin  = 0.1
	monoLightnessMax  = 0.9
	analogousArc      = 30.0
)

// ClampCount clamps a requested colour count to [MinCount, MaxCount].
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// Generate derives a palette from a base colour and a scheme kind. The
// requested count is clamped to [2,12]; split-complementary, triadic and
// tetradic schemes override it with their fixed counts. All hues wrap
// modulo 360 and all saturation/lightness values clamp to [0,1].
//
// SchemeCustom carries no hue rule of its own; Generate falls back to an
// even hue spread so the call is still total, but callers with explicit
// colours should use NewCustom instead.
func Generate(base Colour, scheme Scheme, count int) *Palette {
	count = ClampCount(count)
	if fixed, ok := scheme.FixedCount(); ok {
		count = fixed
	}

	h, s, l := base.HSL()
	colours := make([]Colour, 0, count)

	switch scheme {
	case SchemeMonochromatic:
		// Same hue and saturation, lightness swept across a bounded band
		// around the base so the extremes never wash out.
		for i := 0; i < count; i++ {
			li := l - monoLightnessSpan/2 + monoLightnessSpan*float64(i)/float64(count-1)
			if li < monoLightnessMin {
				li = monoLightnessMin
			}
			if li > monoLightnessMax {
				li = monoLightnessMax
			}
			colours = append(colours, FromHSL(h, s, li))
		}

	case SchemeAnalogous:
		// Hues spread evenly across base-30 .. base+30.
		for i := 0; i < count; i++ {
			hi := h - analogousArc + 2*analogousArc*float64(i)/float64(count-1)
			colours = append(colours, FromHSL(hi, s, l))
		}

	case SchemeComplementary:
		// Base sweeping to its complement; intermediate slots land between
		// the two anchors.
		for i := 0; i < count; i++ {
			hi := h + 180*float64(i)/float64(count-1)
			colours = append(colours, FromHSL(hi, s, l))
		}

	case SchemeSplitComplementary:
		for _, offset := range []float64{0, 150, 210} {
			colours = append(colours, FromHSL(h+offset, s, l))
		}

	case SchemeTriadic:
		for k := 0; k < 3; k++ {
			colours = append(colours, FromHSL(h+120*float64(k), s, l))
		}

	case SchemeTetradic:
		for k := 0; k < 4; k++ {
			colours = append(colours, FromHSL(h+90*float64(k), s, l))
		}

	default:
		// Even hue spread around the wheel.
		for i := 0; i < count; i++ {
			hi := h + 360*float64(i)/float64(count)
			colours = append(colours, FromHSL(hi, s, l))
		}
	}

	return New(scheme, ModeLight, colours)
}

// jitterRange is the maximum per-channel perturbation applied by Jitter,
// roughly five percent of the channel range.
const jitterRange = 13

// Jitter perturbs each channel of base by up to +/-jitterRange so that
// regenerating a palette from the same settings produces a visibly
// different result in the same scheme family. The rng is injected so
// callers can seed it for deterministic output.
func Jitter(base Colour, rng *rand.Rand) Colour {
	return Colour{
		R: jitterChannel(base.R, rng),
		G: jitterChannel(base.G, rng),
		B: jitterChannel(base.B, rng),
	}
}

func jitterChannel(v uint8, rng *rand.Rand) uint8 {
	delta := rng.Intn(2*jitterRange+1) - jitterRange
	n := int(v) + delta
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// Random returns a uniformly random colour from the rng.
func Random(rng *rand.Rand) Colour {
	return Colour{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}
