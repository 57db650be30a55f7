package core

import "math/rand"

// RandomInUnitSphere generates a random point inside the unit sphere
// by rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Random point in [-1,1]³ cube
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the
// XY plane by rejection sampling (used for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
		}
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}
