package colour

import (
	"testing"
)

func TestParseDeficiency(t *testing.T) {
	tests := []struct {
		input   string
		want    Deficiency
		wantErr bool
	}{
		{"none", DeficiencyNone, false},
		{"Protanopia", DeficiencyProtanopia, false},
		{"DEUTERANOPIA", DeficiencyDeuteranopia, false},
		{"tritanopia", DeficiencyTritanopia, false},
		{"grayscale", DeficiencyGrayscale, false},
		{"monochromacy", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDeficiency(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDeficiency(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDeficiency(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSimulateNoneIsIdentity(t *testing.T) {
	for _, c := range []Colour{{}, {R: 255, G: 255, B: 255}, MustParseHex("#3498DB")} {
		if got := Simulate(c, DeficiencyNone); got != c {
			t.Errorf("Simulate(%s, none) = %s, want identity", c.Hex(), got.Hex())
		}
	}
}

func TestSimulateGrayscale(t *testing.T) {
	for _, c := range []Colour{
		MustParseHex("#3498DB"),
		MustParseHex("#FF0000"),
		MustParseHex("#777777"),
	} {
		got := Simulate(c, DeficiencyGrayscale)
		if got.R != got.G || got.G != got.B {
			t.Errorf("Simulate(%s, grayscale) = %s, channels differ", c.Hex(), got.Hex())
		}
	}

	// Extremes map to themselves.
	white := Colour{R: 255, G: 255, B: 255}
	if got := Simulate(white, DeficiencyGrayscale); got != white {
		t.Errorf("grayscale white = %s, want #FFFFFF", got.Hex())
	}
	if got := Simulate(Colour{}, DeficiencyGrayscale); got != (Colour{}) {
		t.Errorf("grayscale black = %s, want #000000", got.Hex())
	}
}

func TestSimulateProtanopiaRed(t *testing.T) {
	// A protanope cannot separate pure red from green: the red and green
	// channels collapse to nearly the same value and blue stays empty.
	got := Simulate(Colour{R: 255}, DeficiencyProtanopia)
	if absInt(int(got.R)-int(got.G)) > 3 {
		t.Errorf("protanopia red = %s, want R ~= G", got.Hex())
	}
	if got.B != 0 {
		t.Errorf("protanopia red blue channel = %d, want 0", got.B)
	}
}

func TestSimulateTritanopiaShiftsBlue(t *testing.T) {
	got := Simulate(Colour{B: 255}, DeficiencyTritanopia)
	if got == (Colour{B: 255}) {
		t.Error("tritanopia left pure blue unchanged")
	}
	if got.R != 0 {
		t.Errorf("tritanopia blue red channel = %d, want 0", got.R)
	}
}

func TestSimulatePaletteDoesNotMutateSource(t *testing.T) {
	p := Generate(MustParseHex("#3498DB"), SchemeTetradic, 4)
	before := p.Hex()

	sim := SimulatePalette(p, DeficiencyDeuteranopia)

	for i, hex := range p.Hex() {
		if hex != before[i] {
			t.Fatalf("source palette entry %d mutated: %s -> %s", i, before[i], hex)
		}
	}
	if sim.Len() != p.Len() {
		t.Errorf("simulated palette has %d entries, want %d", sim.Len(), p.Len())
	}
	if sim.Scheme != p.Scheme || sim.Mode != p.Mode {
		t.Errorf("simulated palette scheme/mode = %v/%v, want %v/%v",
			sim.Scheme, sim.Mode, p.Scheme, p.Mode)
	}
}

func TestSimulatePaletteEmpty(t *testing.T) {
	p := New(SchemeCustom, ModeLight, nil)
	if got := SimulatePalette(p, DeficiencyProtanopia); got.Len() != 0 {
		t.Errorf("simulating an empty palette produced %d entries", got.Len())
	}
}
