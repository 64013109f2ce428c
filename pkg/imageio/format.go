package imageio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats other than ppm and png
var ErrUnknownFormat = errors.New("imageio: unknown output format")

// Write encodes buf in the named format
func Write(w io.Writer, format string, buf *renderer.PixelBuffer) error {
	switch strings.ToLower(format) {
	case "ppm":
		return WritePPM(w, buf)
	case "png":
		return WritePNG(w, buf)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
