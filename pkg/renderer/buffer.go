package renderer

import "github.com/df07/go-montecarlo-raytracer/pkg/core"

// PixelBuffer holds averaged linear colors, top scanline first.
// Rows are written by exactly one worker each.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewPixelBuffer creates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the linear color at column x of row y (row 0 is the top)
func (pb *PixelBuffer) At(x, y int) core.Color {
	return pb.Pixels[y*pb.Width+x]
}

// Set stores the linear color at column x of row y
func (pb *PixelBuffer) Set(x, y int, c core.Color) {
	pb.Pixels[y*pb.Width+x] = c
}

// RGB8 returns the gamma-corrected 8-bit components of the pixel at (x, y)
func (pb *PixelBuffer) RGB8(x, y int) (r, g, b int) {
	c := pb.At(x, y).Sqrt().Clamp(0, 0.999)
	return int(256 * c.X), int(256 * c.Y), int(256 * c.Z)
}
