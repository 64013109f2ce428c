package geometry

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// Hittable is anything a ray can be intersected with.
// Hit reports the intersection within (tMin, tMax], or false when there is none.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
}
