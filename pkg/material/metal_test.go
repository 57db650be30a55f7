package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

const tolerance = 1e-9

func TestNewMetal_ClampsFuzz(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.3, 0.3},
		{1.0, 1.0},
		{2.5, 1.0},
	}

	for _, tt := range tests {
		metal := NewMetal(core.NewVec3(1, 1, 1), tt.in)
		if metal.Fuzz != tt.expected {
			t.Errorf("fuzz %v: expected %v, got %v", tt.in, tt.expected, metal.Fuzz)
		}
	}
}

func TestMetal_ZeroFuzzIsPerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 1, 0)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

	// 45 degree incidence on the XZ ground plane
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("expected scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected mirrored direction %v, got %v", expected, scatter.Scattered.Direction)
	}

	// Angle of incidence equals angle of reflection
	in := rayIn.Direction.Normalize()
	out := scatter.Scattered.Direction.Normalize()
	if math.Abs(out.Dot(normal)-(-in.Dot(normal))) > tolerance {
		t.Errorf("Reflection does not preserve the normal angle: in %v, out %v", in, out)
	}
}

func TestMetal_AbsorbsBelowSurfaceScatter(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	// A ray arriving from behind the surface reflects onto the wrong
	// side of the normal and must be absorbed
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, -1, -1), core.NewVec3(0, 1, 1))

	if _, didScatter := metal.Scatter(rayIn, hit, random); didScatter {
		t.Error("Expected below-surface scatter to be absorbed")
	}
}

func TestMetal_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	metal := NewMetal(albedo, 0.2)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("expected scatter")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}
