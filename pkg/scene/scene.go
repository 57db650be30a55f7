package scene

import (
	"github.com/IcedLeon/Raytracing/pkg/core"
	"github.com/IcedLeon/Raytracing/pkg/geometry"
	"github.com/IcedLeon/Raytracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering. Primitives and
// materials are constructed once before rendering begins and are
// read-only while workers share them.
type Scene struct {
	World        *geometry.HittableList
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	TopColor     core.Vec3 // Sky color looking up
	BottomColor  core.Vec3 // Sky color looking down
}

// NewScene creates a scene with the classic white-to-sky-blue gradient
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		World:        geometry.NewHittableList(),
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		TopColor:     core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0),
	}
}

// GetWorld implements core.Scene
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetBackgroundColors implements core.Scene
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}
