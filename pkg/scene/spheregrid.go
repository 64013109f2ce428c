package scene

import (
	"math"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

// sphereGridSeed fixes the layout so every render of the scene sees the same world
const sphereGridSeed = 1

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a 22x22 field of small jittered spheres around three large feature spheres.
// Small sphere materials are picked at random: 80% diffuse, 15% metal, 5% glass.
func NewSphereGridScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           1200,
		Height:          heightForWidth(1200, cameraConfig.AspectRatio),
		SamplesPerPixel: 500,
		MaxDepth:        50,
	})

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))))

	sampler := core.NewSeededSampler(sphereGridSeed)
	clearing := core.NewVec3(4, 0.2, 0)
	const gridHalf = 11

	for a := -gridHalf; a < gridHalf; a++ {
		for b := -gridHalf; b < gridHalf; b++ {
			chooseMaterial := sampler.Get1D()
			jx, jz := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jx, 0.2, float64(b)+0.9*jz)

			// keep the large metal sphere unobstructed
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var m core.Material
			switch {
			case chooseMaterial < 0.8:
				// hue follows the grid column, chroma the row
				hue := float64(a+gridHalf) / float64(2*gridHalf-1) * 360.0
				chroma := 0.05 + float64(b+gridHalf)/float64(2*gridHalf-1)*0.2
				lightness := 0.65 + 0.1*math.Sin(float64(a+b)*0.5)
				m = material.NewLambertian(oklchToRGB(lightness, chroma, hue))
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3InRange(sampler, 0.5, 1)
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				m = material.NewMetal(albedo, fuzz)
			default:
				m = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, m))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)),
	)
	return s
}
