package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
)

// WritePPM writes buf as a plain-text P3 image, top scanline first
func WritePPM(w io.Writer, buf *renderer.PixelBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buf.Width, buf.Height); err != nil {
		return fmt.Errorf("imageio: writing ppm header: %w", err)
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b := buf.RGB8(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("imageio: writing ppm pixels: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imageio: writing ppm pixels: %w", err)
	}
	return nil
}
