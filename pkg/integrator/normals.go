package integrator

import (
	"math"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

// NormalIntegrator shades the first surface hit by its normal, ignoring materials.
// Useful for checking geometry and camera setup without noise.
type NormalIntegrator struct {
	config Config
}

// NewNormalIntegrator creates a normal-shading integrator.
// Only the first hit is shaded, so any MaxDepth above zero behaves the same.
func NewNormalIntegrator(config Config) *NormalIntegrator {
	return &NormalIntegrator{config: config}
}

// RayColor returns the shaded normal at the nearest hit or the background gradient
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color {
	if ni.config.MaxDepth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, ni.config.tMin(), math.Inf(1))
	if !isHit {
		return Background(ray)
	}
	return material.ShadeNormal(hit.Normal)
}
