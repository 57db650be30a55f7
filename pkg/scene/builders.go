package scene

import (
	"math/rand"

	"github.com/IcedLeon/Raytracing/pkg/core"
	"github.com/IcedLeon/Raytracing/pkg/geometry"
	"github.com/IcedLeon/Raytracing/pkg/material"
	"github.com/IcedLeon/Raytracing/pkg/renderer"
)

// NewEmptyScene creates a scene with no primitives: every ray resolves
// to the sky gradient
func NewEmptyScene(aspectRatio float64) *Scene {
	return NewScene(renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 1,
	})
}

// NewDefaultScene creates the three-sphere showcase: diffuse, metal,
// and a hollow glass shell built from a sphere pair whose inner radius
// is negative so its normals point inward
func NewDefaultScene(aspectRatio float64) *Scene {
	s := NewScene(renderer.CameraConfig{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          30,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 1,
	})

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	return s
}

// NewRandomScene creates the classic cover scene: a large ground
// sphere, a grid of small randomized spheres, and three big spheres,
// viewed through a wide-aperture camera for depth of field
func NewRandomScene(aspectRatio float64, seed int64) *Scene {
	s := NewScene(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10,
	})

	random := rand.New(rand.NewSource(seed))

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			sphereCenter := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the small spheres clear of the big metal one
			if sphereCenter.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				))
			case chooseMat < 0.95:
				mat = material.NewMetal(core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				), 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}

			s.World.Add(geometry.NewSphere(sphereCenter, 0.2, mat))
		}
	}

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
