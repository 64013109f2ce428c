package integrator

import (
	"testing"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

func TestNormalIntegrator(t *testing.T) {
	// Material is irrelevant to normal shading
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewColor(1, 1, 1), 0)),
	)
	integrator := NewNormalIntegrator(Config{MaxDepth: 1})
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name     string
		ray      core.Ray
		expected core.Color
	}{
		{"sphere front", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.NewColor(0.5, 0.5, 1.0)},
		{"sphere top", core.NewRay(core.NewVec3(0, 2, -1), core.NewVec3(0, -1, 0)), core.NewColor(0.5, 1.0, 0.5)},
		{"sky", core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), core.NewColor(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := integrator.RayColor(tt.ray, world, sampler)
			if !c.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestNormalIntegrator_ZeroDepthIsBlack(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewNormal()),
	)
	integrator := NewNormalIntegrator(Config{MaxDepth: 0})
	sampler := core.NewSeededSampler(1)

	rays := []core.Ray{
		core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)),
		core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)),
	}
	for _, ray := range rays {
		if c := integrator.RayColor(ray, world, sampler); c != (core.Color{}) {
			t.Errorf("Expected black at zero depth for %v, got %v", ray.Direction, c)
		}
	}
}
