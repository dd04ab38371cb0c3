package renderer

import "github.com/raypath/whitted/pkg/core"

// Framebuffer is a row-major grid of linear color samples at the downsampled
// render resolution. It is created per frame, fully overwritten, then handed
// to the rectangle compressor.
type Framebuffer struct {
	width, height int
	pixels        []core.Vec3
}

// NewFramebuffer creates a zeroed width x height buffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the buffer width in samples
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in samples
func (fb *Framebuffer) Height() int { return fb.height }

// At returns the sample at column i, row j
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.pixels[j*fb.width+i]
}

// Set stores the sample at column i, row j
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.pixels[j*fb.width+i] = c
}

// RGB is a display color with 8 bits per channel
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ToneMap rescales a linear color into the displayable range: if the largest
// channel exceeds 1 the whole color is scaled by its reciprocal, preserving
// hue. Colors already inside the range pass through unchanged, so the
// operation is idempotent.
func ToneMap(c core.Vec3) core.Vec3 {
	if m := c.MaxComponent(); m > 1 {
		return c.Multiply(1 / m)
	}
	return c
}

// Quantize tone maps a linear color and converts it to 8-bit channels. All
// run-boundary comparisons in the compressor happen on the quantized value,
// so float noise below channel resolution cannot split runs.
func Quantize(c core.Vec3) RGB {
	c = ToneMap(c).Clamp(0, 1)
	return RGB{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
	}
}
