package renderer

import (
	"fmt"

	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	NumWorkers      int     // Parallel scanline workers, 0 for runtime.NumCPU
	Seed            int64   // Base seed for per-scanline samplers
	TMin            float64 // Self-intersection offset, 0 for the integrator default
	NormalsOnly     bool    // Shade by surface normal instead of tracing light
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		TMin:            integrator.DefaultTMin,
	}
}

// Validate reports the first setting the renderer cannot work with
func (c RenderConfig) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	case c.TMin < 0:
		return fmt.Errorf("%w: tmin must not be negative, got %g", ErrInvalidConfig, c.TMin)
	}
	return nil
}

// Merge returns a copy of c with the non-zero fields of override applied.
// A zero MaxDepth or Seed cannot be requested this way; set the field directly.
// NormalsOnly can only be switched on.
func (c RenderConfig) Merge(override RenderConfig) RenderConfig {
	result := c
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.TMin != 0 {
		result.TMin = override.TMin
	}
	if override.NormalsOnly {
		result.NormalsOnly = true
	}
	return result
}

func (c RenderConfig) newIntegrator() integrator.Integrator {
	integratorConfig := integrator.Config{MaxDepth: c.MaxDepth, TMin: c.TMin}
	if c.NormalsOnly {
		return integrator.NewNormalIntegrator(integratorConfig)
	}
	return integrator.NewPathTracingIntegrator(integratorConfig)
}
