package renderer

import (
	"image"
	"image/color"
)

// Rect is one solid-color draw command in display coordinates
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
	Color  RGB `json:"color"`
}

// CompressFrame walks each row of the framebuffer and emits one display-space
// rectangle per maximal run of identically quantized color, scaled up by
// scale in both position and size. The emitted rectangles exactly tile the
// frame with no gaps or overlaps.
func CompressFrame(fb *Framebuffer, scale int) []Rect {
	rects := make([]Rect, 0, fb.Height())
	for j := 0; j < fb.Height(); j++ {
		start := 0
		current := Quantize(fb.At(0, j))
		for i := 1; i <= fb.Width(); i++ {
			endOfRow := i == fb.Width()
			var c RGB
			if !endOfRow {
				c = Quantize(fb.At(i, j))
				if c == current {
					continue
				}
			}
			rects = append(rects, Rect{
				X:      start * scale,
				Y:      j * scale,
				Width:  (i - start) * scale,
				Height: scale,
				Color:  current,
			})
			if !endOfRow {
				start, current = i, c
			}
		}
	}
	return rects
}

// RasterizeRects draws a rectangle list into an RGBA image, for offline
// output and for verifying that a rect list tiles the frame
func RasterizeRects(rects []Rect, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, r := range rects {
		c := color.RGBA{R: r.Color.R, G: r.Color.G, B: r.Color.B, A: 255}
		for y := r.Y; y < r.Y+r.Height && y < height; y++ {
			for x := r.X; x < r.X+r.Width && x < width; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
