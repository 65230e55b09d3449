package colour

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// solidImage fills a bounds-sized RGBA image with per-pixel colours taken
// round-robin from the given list.
func solidImage(w, h int, colours ...color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, colours[i%len(colours)])
			i++
		}
	}
	return img
}

func TestExtractDistinctColourFrequencies(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img := solidImage(2, 2, red, red, red, blue)

	result, err := NewExtractor().Extract(img, 2)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Extract() returned %d swatches, want 2", len(result))
	}
	if got := result[0].Colour.Hex(); got != "#FF0000" {
		t.Errorf("dominant colour = %s, want #FF0000", got)
	}
	if math.Abs(result[0].Frequency-0.75) > 0.001 {
		t.Errorf("dominant frequency = %.3f, want 0.75", result[0].Frequency)
	}
	if got := result[1].Colour.Hex(); got != "#0000FF" {
		t.Errorf("secondary colour = %s, want #0000FF", got)
	}
	if math.Abs(result[1].Frequency-0.25) > 0.001 {
		t.Errorf("secondary frequency = %.3f, want 0.25", result[1].Frequency)
	}
}

func TestExtractFewerDistinctThanRequested(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{R: 200, G: 50, B: 50, A: 255})

	result, err := NewExtractor().Extract(img, 8)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Extract() returned %d swatches, want 1", len(result))
	}
	if math.Abs(result[0].Frequency-1.0) > 0.001 {
		t.Errorf("frequency = %.3f, want 1.0", result[0].Frequency)
	}
}

func TestExtractClustersNoisyImage(t *testing.T) {
	// More distinct colours than k forces the clustering path. Two tight
	// groups around red and blue must come back as two dominant swatches.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			jig := uint8(x + y)
			if x < 4 {
				img.SetRGBA(x, y, color.RGBA{R: 240 + jig, G: jig, B: jig, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: jig, G: jig, B: 240 + jig, A: 255})
			}
		}
	}

	result, err := NewExtractor().Extract(img, 2)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Extract() returned %d swatches, want 2", len(result))
	}

	var sum float64
	for _, s := range result {
		sum += s.Frequency
	}
	if math.Abs(sum-1.0) > 0.01 {
		t.Errorf("frequencies sum to %.3f, want ~1.0", sum)
	}

	// One centroid near red, one near blue, in either order.
	var sawRed, sawBlue bool
	for _, s := range result {
		c := s.Colour
		if c.R > 200 && c.B < 60 {
			sawRed = true
		}
		if c.B > 200 && c.R < 60 {
			sawBlue = true
		}
	}
	if !sawRed || !sawBlue {
		t.Errorf("clusters = %v, want one near red and one near blue", result.Colours())
	}
}

func TestExtractDeterministic(t *testing.T) {
	img := solidImage(16, 16,
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
		color.RGBA{R: 255, G: 255, A: 255},
		color.RGBA{R: 128, G: 64, B: 32, A: 255},
	)

	first, err := NewExtractor().Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	second, err := NewExtractor().Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs returned %d and %d swatches", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("swatch %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestExtractSkipsTransparentPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{}) // fully transparent

	result, err := NewExtractor().Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Extract() returned %d swatches, want 1", len(result))
	}
	if math.Abs(result[0].Frequency-1.0) > 0.001 {
		t.Errorf("frequency = %.3f, want 1.0 after skipping transparent pixels", result[0].Frequency)
	}
}

func TestExtractErrors(t *testing.T) {
	img := solidImage(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	e := NewExtractor()

	if _, err := e.Extract(nil, 4); err == nil {
		t.Error("Extract(nil, 4) succeeded, want error")
	}
	if _, err := e.Extract(img, 0); err == nil {
		t.Error("Extract(img, 0) succeeded, want error")
	}
	if _, err := e.Extract(img, 257); err == nil {
		t.Error("Extract(img, 257) succeeded, want error")
	}

	transparent := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, err := e.Extract(transparent, 4); !errors.Is(err, ErrNoPixels) {
		t.Errorf("Extract(transparent) error = %v, want ErrNoPixels", err)
	}
}

func TestExtractionResultPalette(t *testing.T) {
	r := ExtractionResult{
		{Colour: MustParseHex("#FF0000"), Frequency: 0.6},
		{Colour: MustParseHex("#00FF00"), Frequency: 0.4},
	}
	p := r.Palette(ModeDark)
	if p.Scheme != SchemeCustom {
		t.Errorf("palette scheme = %v, want %v", p.Scheme, SchemeCustom)
	}
	if p.Mode != ModeDark {
		t.Errorf("palette mode = %v, want %v", p.Mode, ModeDark)
	}
	if got := p.Hex(); len(got) != 2 || got[0] != "#FF0000" || got[1] != "#00FF00" {
		t.Errorf("palette hex = %v", got)
	}
}
