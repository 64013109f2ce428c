package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

func TestHittableList_NearestHit(t *testing.T) {
	// Unit-direction ray from the origin; sphere surfaces at t=2 and t=5
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	near := NewSphere(core.NewVec3(0, 0, -3), 1, nil)
	far := NewSphere(core.NewVec3(0, 0, -6), 1, nil)

	tests := []struct {
		name    string
		objects []Hittable
	}{
		{"near first", []Hittable{near, far}},
		{"far first", []Hittable{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.objects...)
			hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-2) > 1e-9 {
				t.Errorf("Expected nearest hit at t=2, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	if _, isHit := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); isHit {
		t.Error("Expected empty list to miss")
	}
}

func TestHittableList_RespectsInterval(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -3), 1, nil),
		NewSphere(core.NewVec3(0, 0, -6), 1, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := list.Hit(ray, 4.5, math.Inf(1))
	if !isHit || math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5 when earlier roots are excluded, got hit=%t t=%f", isHit, hit.T)
	}

	if _, isHit = list.Hit(ray, 0.001, 1.5); isHit {
		t.Error("Expected miss when every root exceeds tMax")
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, nil), NewSphere(core.NewVec3(0, -100.5, -1), 100, nil))
	if list.Len() != 2 {
		t.Fatalf("Expected 2 objects, got %d", list.Len())
	}
	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", list.Len())
	}
}
