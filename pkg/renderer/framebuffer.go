package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// quantizationScale maps a [0,1] channel onto [0,255] with floor,
// matching the classic 255.99 trick so 1.0 lands on 255
const quantizationScale = 255.99

// Framebuffer is a row-major buffer of gamma-corrected RGB triples,
// one per pixel. Tiles partition the image without overlap, so each
// slot has exactly one writer and the buffer needs no locking.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the image height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Set writes the color for pixel (x, y), row 0 at the top
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// At returns the color for pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// QuantizeColor converts a [0,1] color to 8-bit RGBA
func QuantizeColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(quantizationScale * c.X),
		G: uint8(quantizationScale * c.Y),
		B: uint8(quantizationScale * c.Z),
		A: 255,
	}
}

// Image converts the framebuffer to an RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, QuantizeColor(fb.At(x, y)))
		}
	}
	return img
}

// WritePPM writes the framebuffer as a plain-text P3 pixel map
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", fb.width, fb.height); err != nil {
		return err
	}
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := QuantizeColor(fb.At(x, y))
			if _, err := fmt.Fprintf(w, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return nil
}
