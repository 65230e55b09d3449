package colour

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	out := Preview(MustParseHex("#3498DB"), 8)
	if !strings.HasPrefix(out, "\033[48;2;52;152;219m") {
		t.Errorf("Preview() = %q, missing background escape", out)
	}
	if !strings.HasSuffix(out, ansiReset) {
		t.Errorf("Preview() = %q, missing reset", out)
	}
	if !strings.Contains(out, strings.Repeat(" ", 8)) {
		t.Errorf("Preview() = %q, block is not 8 wide", out)
	}

	// Non-positive width falls back to the default.
	if out := Preview(Colour{}, 0); !strings.Contains(out, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Preview(width 0) = %q", out)
	}
}

func TestPreviewWithText(t *testing.T) {
	out := PreviewWithText(Colour{}, "#000000", 12)
	if !strings.Contains(out, "\033[48;2;0;0;0m") {
		t.Errorf("PreviewWithText() = %q, missing background escape", out)
	}
	// Dark swatch gets a white foreground.
	if !strings.Contains(out, "\033[38;2;255;255;255m") {
		t.Errorf("PreviewWithText() = %q, missing white foreground", out)
	}
	if !strings.Contains(out, "#000000") {
		t.Errorf("PreviewWithText() = %q, missing label", out)
	}

	// Long labels are truncated to the block width.
	out = PreviewWithText(Colour{R: 255, G: 255, B: 255}, "#FFFFFF extra", 7)
	if !strings.Contains(out, "#FFFFFF") || strings.Contains(out, "extra") {
		t.Errorf("PreviewWithText() = %q, label not truncated to width", out)
	}
}
