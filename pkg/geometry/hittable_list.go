package geometry

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// HittableList is an ordered collection of shapes tested linearly.
// It must not be modified while a render is reading it.
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	list.Add(objects...)
	return list
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.objects = append(l.objects, objects...)
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.objects = nil
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the underlying objects in insertion order
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the nearest intersection among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
