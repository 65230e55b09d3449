package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-colour PNG and returns its path.
func writeTestPNG(t *testing.T, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 52, G: 152, B: 219, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, "swatch.png")

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("loaded image bounds = %v, want 4x4", bounds)
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	loader := NewFileLoader()
	dir := t.TempDir()

	if _, err := loader.Load(""); err == nil {
		t.Error("Load(\"\") succeeded, want error")
	}
	if _, err := loader.Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load(missing file) succeeded, want error")
	}
	if _, err := loader.Load(dir); err == nil {
		t.Error("Load(directory) succeeded, want error")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("failed to write junk file: %v", err)
	}
	if _, err := loader.Load(junk); err == nil {
		t.Error("Load(non-image data) succeeded, want error")
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t, "valid.png")
	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath(valid PNG) = %v", err)
	}

	dir := t.TempDir()
	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath(\"\") succeeded, want error")
	}
	if err := ValidateImagePath(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("ValidateImagePath(missing file) succeeded, want error")
	}
	if err := ValidateImagePath(dir); err == nil {
		t.Error("ValidateImagePath(directory) succeeded, want error")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("failed to write junk file: %v", err)
	}
	if err := ValidateImagePath(junk); err == nil {
		t.Error("ValidateImagePath(non-image data) succeeded, want error")
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"wallpaper.png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"document.pdf", false},
		{"archive.tar.gz", false},
		{"noextension", false},
	}
	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
