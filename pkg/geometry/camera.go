package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

var (
	ErrInvalidAspectRatio = errors.New("camera: aspect ratio must be positive")
	ErrInvalidFieldOfView = errors.New("camera: vertical field of view must be in (0, 180) degrees")
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Point // Eye position
	LookAt        core.Point // Point the camera looks at
	Up            core.Vec3  // Up direction, must not be parallel to the view direction
	VFov          float64    // Vertical field of view in degrees
	AspectRatio   float64    // Width / height
	Aperture      float64    // Lens diameter, 0 for a pinhole camera
	FocusDistance float64    // Distance to the plane in focus, 0 to focus on LookAt
}

// Validate checks the constraints NewCamera relies on.
// A degenerate Up vector is not detected.
func (c CameraConfig) Validate() error {
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: got %g", ErrInvalidFieldOfView, c.VFov)
	}
	return nil
}

// Camera generates primary rays. It is immutable once created.
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	config          CameraConfig
}

// NewCamera derives the camera basis and viewport from config
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := viewportHeight * config.AspectRatio

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		config:          config,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The direction is not normalized.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Basis returns the camera's orthonormal basis: right, up and backward
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}
