package colour

import "math"

// Level is a WCAG 2.0 conformance level for text contrast.
type Level string

const (
	// LevelFail indicates the contrast ratio is below 4.5:1.
	LevelFail Level = "Fail"
	// LevelAA indicates at least 4.5:1, the AA minimum for normal text.
	LevelAA Level = "AA"
	// LevelAAA indicates at least 7:1, the AAA minimum for normal text.
	LevelAAA Level = "AAA"
)

// WCAG 2.0 minimum contrast ratios for normal text.
const (
	RatioAA  = 4.5
	RatioAAA = 7.0
)

// MinRatio returns the contrast ratio threshold for the level.
// LevelFail has no threshold and returns 1.
func (l Level) MinRatio() float64 {
	switch l {
	case LevelAAA:
		return RatioAAA
	case LevelAA:
		return RatioAA
	default:
		return 1
	}
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Colour) float64 {
	r := gammaExpand(float64(c.R) / 255.0)
	g := gammaExpand(float64(c.G) / 255.0)
	b := gammaExpand(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaExpand converts an sRGB channel to linear light using the standard
// piecewise curve.
func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// gammaCompress is the inverse of gammaExpand.
func gammaCompress(v float64) float64 {
	if v <= 0.03928/12.92 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, symmetric in its
// arguments. https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Colour) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// LevelForRatio maps a contrast ratio to the WCAG level it satisfies for
// normal text.
func LevelForRatio(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// PickForeground returns black or white, whichever is legible against the
// given background: black if it reaches the AA ratio, white otherwise.
func PickForeground(bg Colour) Colour {
	black := Colour{}
	if ContrastRatio(bg, black) >= RatioAA {
		return black
	}
	return Colour{R: 255, G: 255, B: 255}
}
