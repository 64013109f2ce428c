package core

import (
	"math/rand"
	"testing"
)

const samplingIterations = 2000

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < samplingIterations; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Sample %d outside unit sphere: %v (len² %f)", i, p, p.LengthSquared())
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))
	for i := 0; i < samplingIterations; i++ {
		p := RandomUnitVector(sampler)
		if d := p.Length() - 1; d > 1e-9 || d < -1e-9 {
			t.Fatalf("Sample %d not unit length: %v (len %f)", i, p, p.Length())
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	sampler := NewSeededSampler(99)
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < samplingIterations; i++ {
			p := RandomInHemisphere(sampler, normal)
			if p.Dot(normal) < 0 {
				t.Fatalf("Sample %v points away from normal %v", p, normal)
			}
			if p.LengthSquared() >= 1 {
				t.Fatalf("Sample %v outside unit sphere", p)
			}
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < samplingIterations; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample %d has non-zero z: %v", i, p)
		}
		if p.X*p.X+p.Y*p.Y >= 1 {
			t.Fatalf("Disk sample %d outside unit disk: %v", i, p)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(1234)
	b := NewSeededSampler(1234)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with equal seeds diverged at draw %d", i)
		}
	}
}

func TestRandomVec3InRange(t *testing.T) {
	sampler := NewSeededSampler(5)
	for i := 0; i < samplingIterations; i++ {
		v := RandomVec3InRange(sampler, -2, 3)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("Component %f outside [-2, 3)", c)
			}
		}
	}
}
