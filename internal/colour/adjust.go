package colour

// Adjustment search bounds. The lightness walk takes 0.01 steps for at
// most 100 iterations, so it always terminates at a lightness bound; the
// saturation fallback steps down by 0.1 at a time.
const (
	adjustLightnessStep  = 0.01
	adjustMaxSteps       = 100
	adjustSaturationStep = 0.1
)

// AdjustmentRequest configures an accessibility adjustment.
type AdjustmentRequest struct {
	// TargetLevel is the WCAG level to reach (LevelAA or LevelAAA).
	TargetLevel Level

	// Background is the reference background. Nil means auto: black or
	// white, whichever yields the higher contrast with the entry colour.
	Background *Colour

	// PreserveCharacter keeps hue and saturation fixed, varying only
	// lightness. When false, saturation may also be reduced to help reach
	// the target before giving up.
	PreserveCharacter bool
}

// ResolveBackground returns the reference background for c: the explicit
// background when set, otherwise black or white by higher contrast.
func (r AdjustmentRequest) ResolveBackground(c Colour) Colour {
	if r.Background != nil {
		return *r.Background
	}
	black := Colour{}
	white := Colour{R: 255, G: 255, B: 255}
	if ContrastRatio(c, black) >= ContrastRatio(c, white) {
		return black
	}
	return white
}

// Adjust nudges the entry colour toward the requested contrast ratio
// against the resolved background. A colour that already meets the target
// is returned unchanged, so re-adjusting a compliant entry is a no-op.
// When the target is not attainable within the lightness (and, without
// PreserveCharacter, saturation) bounds the best achievable colour is
// returned with the level actually attained, which may still be Fail; an
// unreachable target is a reported partial result, not an error.
func Adjust(e Entry, req AdjustmentRequest) Entry {
	c := e.Value()
	bg := req.ResolveBackground(c)
	target := req.TargetLevel.MinRatio()

	ratio := ContrastRatio(c, bg)
	if ratio >= target {
		e.Contrast = ratio
		e.Level = LevelForRatio(ratio)
		return e
	}

	// Walk toward whichever extreme offers more contrast headroom against
	// the background: darken if black beats white, lighten otherwise.
	direction := 1.0
	if ContrastRatio(bg, Colour{}) >= ContrastRatio(bg, Colour{R: 255, G: 255, B: 255}) {
		direction = -1.0
	}

	h, s, l := c.HSL()
	best := c
	bestRatio := ratio

	walk := func(sat float64) (Colour, float64, bool) {
		li := l
		for step := 0; step < adjustMaxSteps; step++ {
			li += direction * adjustLightnessStep
			if li < 0 {
				li = 0
			}
			if li > 1 {
				li = 1
			}
			cand := FromHSL(h, sat, li)
			r := ContrastRatio(cand, bg)
			if r > bestRatio {
				best = cand
				bestRatio = r
			}
			if r >= target {
				return cand, r, true
			}
			if li == 0 || li == 1 {
				break
			}
		}
		return best, bestRatio, false
	}

	result, resultRatio, ok := walk(s)
	if !ok && !req.PreserveCharacter {
		// Desaturating pulls the colour toward the grey axis, where the
		// lightness walk has more contrast headroom. The last step clamps
		// to exactly zero so the grey axis itself is always tried even
		// when the starting saturation is not a multiple of the step.
		for sat := s - adjustSaturationStep; ; sat -= adjustSaturationStep {
			if sat < 0 {
				sat = 0
			}
			result, resultRatio, ok = walk(sat)
			if ok || sat == 0 {
				break
			}
		}
	}

	e.Contrast = resultRatio
	e.Level = LevelForRatio(resultRatio)
	if result != e.Colour {
		adjusted := result
		e.Adjusted = &adjusted
	} else {
		e.Adjusted = nil
	}
	return e
}

// AdjustPalette applies Adjust to every entry and returns a new palette.
// The source palette is not mutated; an empty palette yields an empty
// result.
func AdjustPalette(p *Palette, req AdjustmentRequest) *Palette {
	out := &Palette{
		Scheme:  p.Scheme,
		Mode:    p.Mode,
		Entries: make([]Entry, len(p.Entries)),
	}
	for i, e := range p.Entries {
		out.Entries[i] = Adjust(e, req)
	}
	return out
}
