package renderer

import (
	"math"
	"math/rand"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// CameraConfig contains thin-lens camera parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the plane of sharp focus
}

// Camera maps normalized image coordinates to world-space rays using a
// thin-lens model. All basis vectors are computed once at construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	focus := config.FocusDistance

	return &Camera{
		origin: origin,
		lowerLeftCorner: origin.
			Subtract(u.Multiply(halfWidth * focus)).
			Subtract(v.Multiply(halfHeight * focus)).
			Subtract(w.Multiply(focus)),
		horizontal: u.Multiply(2 * halfWidth * focus),
		vertical:   v.Multiply(2 * halfHeight * focus),
		u:          u,
		v:          v,
		w:          w,
		lensRadius: config.Aperture / 2,
	}
}

// GetRay generates a ray through normalized image coordinates (s, t)
// with 0 <= s,t <= 1. The ray origin is jittered on the lens disk, so
// objects at the focus distance stay sharp regardless of aperture.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}
