package core

import "math/rand"

// HitRecord contains information about a ray-object intersection.
// The normal is unit length and always points away from the sphere
// center scaled by the sign of the radius: a negative-radius sphere
// reports inward normals, which is how hollow glass shells are built.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Surface normal at intersection
	Material Material // Material of the hit object
}

// Hittable is the capability of a primitive to report where a ray
// first intersects it within the open interval (tMin, tMax)
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Per-channel fraction of light that survives
}

// Material is the capability of a surface to scatter an incoming ray.
// Returns false when the ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Scene provides read-only access to renderable content
type Scene interface {
	GetWorld() Hittable
	GetBackgroundColors() (topColor, bottomColor Vec3)
}
