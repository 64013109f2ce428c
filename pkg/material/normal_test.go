package material

import (
	"testing"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

func TestNormal_Shade(t *testing.T) {
	mat := NewNormal()

	if _, scattered := mat.Scatter(core.Ray{}, core.HitRecord{}, core.NewSeededSampler(1)); scattered {
		t.Error("Normal material should never scatter")
	}

	tests := []struct {
		normal   core.Vec3
		expected core.Color
	}{
		{core.NewVec3(0, 0, 1), core.NewColor(0.5, 0.5, 1)},
		{core.NewVec3(0, -1, 0), core.NewColor(0.5, 0, 0.5)},
		{core.NewVec3(1, 0, 0), core.NewColor(1, 0.5, 0.5)},
	}
	for _, tt := range tests {
		got := mat.Shade(core.HitRecord{Normal: tt.normal})
		if !got.ApproxEquals(tt.expected, 1e-12) {
			t.Errorf("Shade(%v) = %v, expected %v", tt.normal, got, tt.expected)
		}
	}
}
