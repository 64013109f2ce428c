package scene

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres (diffuse, hollow glass, metal) on a large ground sphere
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          heightForWidth(400, cameraConfig.AspectRatio),
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})
	addMaterialSpheres(s)
	return s
}

// NewDefocusScene is the default scene seen through a wide-aperture lens focused on the center sphere
func NewDefocusScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    2.0,
		// Focus distance 0 focuses on LookAt
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          heightForWidth(400, cameraConfig.AspectRatio),
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})
	addMaterialSpheres(s)
	return s
}

func addMaterialSpheres(s *Scene) {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		// Hollow glass: the negative inner radius flips the normals of the inner wall
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)
}
