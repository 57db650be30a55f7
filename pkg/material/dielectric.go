package material

import (
	"math"
	"math/rand"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// Dielectric represents a transparent material like glass that can
// both reflect and refract. It never absorbs and never tints.
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Whether the ray is entering or exiting the surface is read off the
// sign of dot(direction, normal); negative-radius spheres report
// inward normals, which makes hollow shells come out right here.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64

	if rayIn.Direction.Dot(hit.Normal) > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	}

	refracted, canRefract := refract(rayIn.Direction, outwardNormal, niOverNt)

	// Refraction failure means total internal reflection
	reflectProb := 1.0
	if canRefract {
		reflectProb = Reflectance(cosine, d.RefractiveIndex)
	}

	var direction core.Vec3
	if random.Float64() < reflectProb {
		direction = reflect(rayIn.Direction, hit.Normal)
	} else {
		direction = refracted
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// refract calculates the refraction of a vector using Snell's law.
// Returns false when the refraction discriminant goes non-positive,
// signaling total internal reflection.
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
