package scene

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

// NewNormalsScene creates a single sphere resting on a ground sphere, shaded by surface normal
func NewNormalsScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          heightForWidth(400, cameraConfig.AspectRatio),
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NormalsOnly:     true,
	})

	normal := material.NewNormal()
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, normal),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, normal),
	)
	return s
}
