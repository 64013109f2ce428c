package material

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// DiffuseModel selects how a Lambertian surface picks scatter directions
type DiffuseModel int

const (
	// UnitVectorDiffuse scatters along normal + random unit vector (true Lambertian)
	UnitVectorDiffuse DiffuseModel = iota
	// HemisphereDiffuse scatters uniformly in the hemisphere around the normal
	HemisphereDiffuse
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color
	Model  DiffuseModel
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo, Model: UnitVectorDiffuse}
}

// NewHemisphereLambertian creates a diffuse material using uniform hemisphere sampling
func NewHemisphereLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo, Model: HemisphereDiffuse}
}

// Scatter implements the Material interface for lambertian scattering. It always scatters.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	var scatterDirection core.Vec3
	switch l.Model {
	case HemisphereDiffuse:
		scatterDirection = core.RandomInHemisphere(sampler, hit.Normal)
	default:
		scatterDirection = hit.Normal.Add(core.RandomUnitVector(sampler))
	}

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
	}, true
}
