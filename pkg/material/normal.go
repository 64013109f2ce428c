package material

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// Normal visualizes surface orientation instead of transporting light.
// It never scatters; integrators that understand it call Shade directly.
type Normal struct{}

// NewNormal creates a normal-shading material
func NewNormal() *Normal {
	return &Normal{}
}

// Scatter always absorbs
func (n *Normal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Shade maps a unit normal from [-1,1]³ to a color in [0,1]³
func (n *Normal) Shade(hit core.HitRecord) core.Color {
	return ShadeNormal(hit.Normal)
}

// ShadeNormal maps a unit normal from [-1,1]³ to a color in [0,1]³
func ShadeNormal(normal core.Vec3) core.Color {
	return normal.Add(core.NewColor(1, 1, 1)).Multiply(0.5)
}
