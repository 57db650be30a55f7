package material

import (
	"math/rand"
	"testing"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

func TestLambertian_AttenuationIsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.1)
	mat := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		T:      1.0,
		Point:  core.NewVec3(0, 0, -1),
		Normal: core.NewVec3(0, 0, 1),
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := mat.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Lambertian must never absorb")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v exactly, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_ScatteredRayIsNeverDegenerate(t *testing.T) {
	mat := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	random := rand.New(rand.NewSource(7))

	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: core.NewVec3(0, 1, 0),
	}
	rayIn := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0.2, -1, 0.1))

	for i := 0; i < 1000; i++ {
		scatter, _ := mat.Scatter(rayIn, hit, random)

		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray must originate at the hit point, got %v", scatter.Scattered.Origin)
		}
		if scatter.Scattered.Direction.Length() == 0 {
			t.Fatal("Scattered direction must never be zero length")
		}
	}
}
