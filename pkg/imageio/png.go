package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
)

// ToImage converts buf to an RGBA image with the same bytes WritePPM emits
func ToImage(buf *renderer.PixelBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGB8(x, y)
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// WritePNG encodes buf as a PNG image
func WritePNG(w io.Writer, buf *renderer.PixelBuffer) error {
	if err := png.Encode(w, ToImage(buf)); err != nil {
		return fmt.Errorf("imageio: encoding png: %w", err)
	}
	return nil
}
