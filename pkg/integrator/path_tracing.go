package integrator

import (
	"math"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce budget
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor follows ray through the scene, multiplying material attenuations until the
// path escapes to the background, is absorbed, or exhausts the bounce budget.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color {
	throughput := core.NewColor(1, 1, 1)
	tMin := pt.config.tMin()

	for depth := pt.config.MaxDepth; ; depth-- {
		// If we've exceeded the ray bounce limit, no more light is gathered
		if depth <= 0 {
			return core.Color{}
		}

		hit, isHit := world.Hit(ray, tMin, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(Background(ray))
		}

		if shader, ok := hit.Material.(core.Shader); ok {
			return throughput.MultiplyVec(shader.Shade(hit))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return core.Color{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}
