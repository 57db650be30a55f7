package renderer

import (
	"image/color"
	"strings"
	"testing"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

func TestFramebuffer_SetAndAt(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	if fb.Width() != 4 || fb.Height() != 3 {
		t.Fatalf("Expected 4x3 framebuffer, got %dx%d", fb.Width(), fb.Height())
	}

	// Zeroed on creation
	if got := fb.At(2, 1); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected new framebuffer to be black, got %v", got)
	}

	c := core.NewVec3(0.25, 0.5, 0.75)
	fb.Set(3, 2, c)
	if got := fb.At(3, 2); got != c {
		t.Errorf("Expected %v at (3,2), got %v", c, got)
	}

	// Neighbor stays untouched
	if got := fb.At(2, 2); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected (2,2) to remain black, got %v", got)
	}
}

func TestQuantizeColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"mid gray floors", core.NewVec3(0.5, 0.5, 0.5), color.RGBA{127, 127, 127, 255}},
		{"mixed channels", core.NewVec3(0.25, 0.5, 0.75), color.RGBA{63, 127, 191, 255}},
		{"clamps overshoot", core.NewVec3(1.5, -0.5, 2.0), color.RGBA{255, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeColor(tt.color); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFramebuffer_Image(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 1, core.NewVec3(0, 0, 1))

	img := fb.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red at (0,0), got %v", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected blue at (1,1), got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black at (1,0), got %v", got)
	}
}

func TestFramebuffer_WritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 0, core.NewVec3(0, 1, 0))

	var sb strings.Builder
	if err := fb.WritePPM(&sb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	expected := []string{
		"P3",
		"2 2",
		"255",
		"255 0 0",
		"0 255 0",
		"0 0 0",
		"0 0 0",
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(lines))
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}
