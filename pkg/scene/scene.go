package scene

import (
	"fmt"

	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// The world is read-only once rendering starts.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.HittableList
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the render settings a scene recommends
type SamplingConfig struct {
	Width           int  // Image width
	Height          int  // Image height
	SamplesPerPixel int  // Number of rays per pixel
	MaxDepth        int  // Maximum ray bounce depth
	NormalsOnly     bool // Render surface normals instead of light transport
}

// newScene builds an empty scene around a camera
func newScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		SamplingConfig: samplingConfig,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	if s == nil {
		return nil
	}
	return s.Camera
}

// GetWorld returns the objects rays are tested against, or nil when there are none
func (s *Scene) GetWorld() geometry.Hittable {
	if s == nil || s.World == nil {
		return nil
	}
	return s.World
}

// Add appends objects to the world
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.World.Add(objects...)
}

// SetCameraConfig replaces the camera. The world is left untouched.
func (s *Scene) SetCameraConfig(config geometry.CameraConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("scene camera: %w", err)
	}
	s.CameraConfig = config
	s.Camera = geometry.NewCamera(config)
	return nil
}

// GetPrimitiveCount returns the number of objects tested per ray
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// heightForWidth derives an image height from the camera aspect ratio
func heightForWidth(width int, aspectRatio float64) int {
	return max(1, int(float64(width)/aspectRatio))
}
