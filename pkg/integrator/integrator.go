package integrator

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
)

// DefaultTMin is the self-intersection offset applied to every scene query.
// It is absolute, so it is sensitive to scene scale.
const DefaultTMin = 0.001

var (
	white   = core.NewColor(1.0, 1.0, 1.0)
	skyBlue = core.NewColor(0.5, 0.7, 1.0)
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray from world
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color
}

// Config contains the integrator parameters
type Config struct {
	MaxDepth int     // Bounce budget; 0 or less renders black
	TMin     float64 // Lower bound of scene queries; 0 or less uses DefaultTMin
}

func (c Config) tMin() float64 {
	if c.TMin <= 0 {
		return DefaultTMin
	}
	return c.TMin
}

// Background returns the sky gradient seen along ray: white at the bottom, blue at the top
func Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, t)
}
