package renderer

import (
	"image"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// Display receives finished pixels for live preview. Implementations
// must be safe for concurrent use by all workers and must not block
// beyond a short lock; updates are best-effort and may be dropped.
type Display interface {
	UpdatePixel(x, y int, color core.Vec3)
	UpdateRegion(bounds image.Rectangle, colors []core.Vec3)
}
