package renderer

import (
	"context"
	"image"

	"github.com/IcedLeon/Raytracing/pkg/core"
	"github.com/IcedLeon/Raytracing/pkg/integrator"
)

// Scene is what the renderer needs from a scene: the core content plus
// a camera. Defined here to keep scene packages free to depend on the
// renderer's camera type.
type Scene interface {
	core.Scene
	GetCamera() *Camera
}

// TileRenderer renders individual tiles into the shared framebuffer.
// Tiles never overlap, so framebuffer writes need no synchronization;
// only progress counters and the optional display are shared state.
type TileRenderer struct {
	scene      Scene
	integrator *integrator.PathTracer
	fb         *Framebuffer
	progress   *Progress
	display    Display // May be nil
}

// NewTileRenderer creates a tile renderer writing into fb
func NewTileRenderer(scene Scene, pt *integrator.PathTracer, fb *Framebuffer, progress *Progress, display Display) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: pt,
		fb:         fb,
		progress:   progress,
		display:    display,
	}
}

// RenderTile renders every pixel of the tile in row-major order:
// stratified jittered samples through the camera, averaged, gamma
// corrected, and written once to the pixel's unique slot. Cancellation
// is observed between rows, so no partial pixel is ever visible.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile) TileResult {
	camera := tr.scene.GetCamera()
	bounds := tile.Bounds
	width := float64(tr.fb.Width())
	height := float64(tr.fb.Height())

	var local core.StatsSnapshot
	pixelsDone := 0
	rowColors := make([]core.Vec3, bounds.Dx())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		select {
		case <-ctx.Done():
			tr.finish(local)
			return TileResult{TileID: tile.ID, Pixels: pixelsDone, Stats: local, Err: ctx.Err()}
		default:
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < tile.Samples; sample++ {
				// Sub-pixel jitter; t runs bottom-up while rows are
				// stored top-down
				s := (float64(x) + tile.Random.Float64()) / width
				t := (height - 1 - float64(y) + tile.Random.Float64()) / height

				ray := camera.GetRay(s, t, tile.Random)
				colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.scene, tile.Random, &local))
			}

			color := colorAccum.Divide(float64(tile.Samples)).GammaCorrect(2.0)
			tr.fb.Set(x, y, color)
			rowColors[x-bounds.Min.X] = color
			pixelsDone++
		}

		tr.progress.AddPixels(bounds.Dx())
		if tr.display != nil {
			rowBounds := image.Rect(bounds.Min.X, y, bounds.Max.X, y+1)
			tr.display.UpdateRegion(rowBounds, rowColors)
		}
	}

	tr.finish(local)
	return TileResult{TileID: tile.ID, Pixels: pixelsDone, Stats: local}
}

// finish merges the tile-local counters into the shared statistics
func (tr *TileRenderer) finish(local core.StatsSnapshot) {
	tr.progress.Stats().Merge(local)
}
