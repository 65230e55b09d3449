package colour

import (
	"math"
	"testing"
)

func TestAdjustReachesTargetAgainstWhite(t *testing.T) {
	// The documented example: #AAAAAA on white fails AA; the adjuster
	// lowers lightness until the 4.5:1 target is met.
	white := MustParseHex("#FFFFFF")
	entry := NewEntry(MustParseHex("#AAAAAA"))

	req := AdjustmentRequest{
		TargetLevel:       LevelAA,
		Background:        &white,
		PreserveCharacter: true,
	}
	got := Adjust(entry, req)

	if got.Adjusted == nil {
		t.Fatal("expected an adjusted colour for #AAAAAA on white")
	}
	if ratio := ContrastRatio(got.Value(), white); ratio < RatioAA {
		t.Errorf("adjusted contrast = %.2f, want >= %v", ratio, RatioAA)
	}
	if got.Level == LevelFail {
		t.Errorf("level = %v, want AA or better", got.Level)
	}

	// Character preserved: grey stays grey (hue 0, saturation 0), only
	// lightness moved, and it moved down.
	_, s, l := got.Value().HSL()
	if s > 0.01 {
		t.Errorf("adjusted saturation = %.3f, want 0 (character preserved)", s)
	}
	_, _, origL := entry.Colour.HSL()
	if l >= origL {
		t.Errorf("adjusted lightness %.3f, want < original %.3f", l, origL)
	}
}

func TestAdjustPreservesHueAndSaturation(t *testing.T) {
	white := MustParseHex("#FFFFFF")
	c := MustParseHex("#7FB3D5")
	h0, s0, _ := c.HSL()

	got := Adjust(NewEntry(c), AdjustmentRequest{
		TargetLevel:       LevelAA,
		Background:        &white,
		PreserveCharacter: true,
	})

	h1, s1, _ := got.Value().HSL()
	if hueDelta(h0, h1) > 2 {
		t.Errorf("hue changed from %.2f to %.2f with preserve-character set", h0, h1)
	}
	if math.Abs(s0-s1) > 0.05 {
		t.Errorf("saturation changed from %.3f to %.3f with preserve-character set", s0, s1)
	}
	if ratio := ContrastRatio(got.Value(), white); ratio < RatioAA {
		t.Errorf("adjusted contrast = %.2f, want >= %v", ratio, RatioAA)
	}
}

func TestAdjustCompliantEntryIsNoOp(t *testing.T) {
	white := MustParseHex("#FFFFFF")
	// #1F618D on white is well above 4.5:1 already.
	entry := NewEntry(MustParseHex("#1F618D"))

	req := AdjustmentRequest{TargetLevel: LevelAA, Background: &white, PreserveCharacter: true}
	got := Adjust(entry, req)

	if got.Adjusted != nil {
		t.Errorf("compliant entry was adjusted to %s", got.Adjusted.Hex())
	}
	if got.Value() != entry.Colour {
		t.Errorf("compliant entry colour changed: %s -> %s", entry.Colour.Hex(), got.Value().Hex())
	}
}

func TestAdjustIsIdempotent(t *testing.T) {
	white := MustParseHex("#FFFFFF")
	req := AdjustmentRequest{TargetLevel: LevelAA, Background: &white, PreserveCharacter: true}

	first := Adjust(NewEntry(MustParseHex("#AAAAAA")), req)
	second := Adjust(first, req)

	if second.Value() != first.Value() {
		t.Errorf("re-adjusting a compliant result changed the colour: %s -> %s",
			first.Value().Hex(), second.Value().Hex())
	}
	if second.Level != first.Level {
		t.Errorf("re-adjusting changed the level: %v -> %v", first.Level, second.Level)
	}
}

func TestAdjustUnreachableTargetReturnsBestEffort(t *testing.T) {
	// Mid-grey background: no colour can reach 7:1 against #808080, so the
	// adjuster reports the best attainable result rather than failing.
	bg := MustParseHex("#808080")
	entry := NewEntry(MustParseHex("#3498DB"))

	got := Adjust(entry, AdjustmentRequest{
		TargetLevel:       LevelAAA,
		Background:        &bg,
		PreserveCharacter: true,
	})

	if got.Level == LevelAAA {
		t.Errorf("level = AAA against mid grey, which should be unreachable")
	}
	if got.Contrast <= ContrastRatio(entry.Colour, bg) {
		t.Errorf("best-effort contrast %.2f did not improve on original %.2f",
			got.Contrast, ContrastRatio(entry.Colour, bg))
	}
}

func TestAdjustAutoBackground(t *testing.T) {
	// Auto resolves to black or white, whichever contrasts higher.
	light := MustParseHex("#F3D9A4")
	if bg := (AdjustmentRequest{}).ResolveBackground(light); bg != (Colour{}) {
		t.Errorf("auto background for light colour = %s, want black", bg.Hex())
	}
	dark := MustParseHex("#16324A")
	if bg := (AdjustmentRequest{}).ResolveBackground(dark); bg != (Colour{R: 255, G: 255, B: 255}) {
		t.Errorf("auto background for dark colour = %s, want white", bg.Hex())
	}
}

func TestAdjustWithoutPreserveCharacterCanDesaturate(t *testing.T) {
	// A saturated mid-lightness colour against a mid background may need
	// the saturation fallback; the call must stay bounded and report the
	// best level attained either way.
	bg := MustParseHex("#6B8E23")
	got := Adjust(NewEntry(MustParseHex("#8E6B23")), AdjustmentRequest{
		TargetLevel:       LevelAA,
		Background:        &bg,
		PreserveCharacter: false,
	})

	if got.Contrast < 1 {
		t.Errorf("contrast = %.2f, want >= 1", got.Contrast)
	}
	if got.Level == "" {
		t.Error("level not set")
	}
}

func TestAdjustDesaturationFallbackReachesGreyAxis(t *testing.T) {
	// A starting saturation that is not a multiple of the fallback step
	// must still end the fallback at exactly zero saturation rather than
	// stopping one step short of the grey axis.
	bg := MustParseHex("#808080")
	c := FromHSL(210, 0.95, 0.53)

	got := Adjust(NewEntry(c), AdjustmentRequest{
		TargetLevel:       LevelAAA,
		Background:        &bg,
		PreserveCharacter: false,
	})

	// AAA against mid grey is unreachable; the best effort must still be
	// reported after the full fallback, with the contrast improved.
	if got.Level == LevelAAA {
		t.Error("level = AAA against mid grey, which should be unreachable")
	}
	if got.Contrast <= ContrastRatio(c, bg) {
		t.Errorf("best-effort contrast %.2f did not improve on original %.2f",
			got.Contrast, ContrastRatio(c, bg))
	}
	if got.Adjusted == nil {
		t.Fatal("expected an adjusted colour")
	}
}

func TestAdjustPaletteHandlesEmpty(t *testing.T) {
	p := New(SchemeCustom, ModeLight, nil)
	got := AdjustPalette(p, AdjustmentRequest{TargetLevel: LevelAA})
	if got.Len() != 0 {
		t.Errorf("adjusting an empty palette produced %d entries", got.Len())
	}
}

func TestAdjustPaletteDoesNotMutateSource(t *testing.T) {
	white := MustParseHex("#FFFFFF")
	p := Generate(MustParseHex("#AAAAAA"), SchemeMonochromatic, 4)
	before := p.Hex()

	AdjustPalette(p, AdjustmentRequest{TargetLevel: LevelAAA, Background: &white})

	for i, hex := range p.Hex() {
		if hex != before[i] {
			t.Fatalf("source palette entry %d mutated: %s -> %s", i, before[i], hex)
		}
	}
}
