package integrator

import (
	"math"
	"math/rand"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// tMinEpsilon keeps secondary rays from re-hitting the surface they
// just left ("shadow acne") due to floating-point error at the origin
const tMinEpsilon = 0.001

// PathTracer computes a Monte-Carlo radiance estimate by following a
// ray through successive scatter events until it escapes to the sky,
// is absorbed, or runs out of depth
type PathTracer struct {
	// MaxDepth is a hard cutoff: paths that reach it contribute black.
	// This biases dim rather than crashing, and is the single most
	// effective performance lever in the renderer.
	MaxDepth int
}

// NewPathTracer creates a path tracer with the given depth limit
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor returns the radiance estimate for a single camera ray.
// The recursion of the rendering equation is expressed as a loop with
// an accumulated throughput factor, so depth is bounded without stack
// growth. Counters are accumulated into local and merged by the caller.
func (pt *PathTracer) RayColor(ray core.Ray, scene core.Scene, random *rand.Rand, local *core.StatsSnapshot) core.Vec3 {
	if local == nil {
		local = &core.StatsSnapshot{}
	}

	world := scene.GetWorld()
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		local.RaysTraced++
		local.IntersectionTests++

		hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.backgroundGradient(ray, scene))
		}

		local.MaterialScatters++
		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			// Absorbed: the path terminates with no contribution
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Depth exhausted
	return core.Vec3{}
}

// backgroundGradient returns the sky color for a ray that escapes the
// scene: a vertical gradient between the scene's bottom and top colors
func (pt *PathTracer) backgroundGradient(r core.Ray, scene core.Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map direction y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
