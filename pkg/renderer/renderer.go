package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/IcedLeon/Raytracing/pkg/core"
	"github.com/IcedLeon/Raytracing/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains render parameters
type Config struct {
	Width           int   // Output resolution in pixels
	Height          int   // Output resolution in pixels
	SamplesPerPixel int   // Rays averaged per pixel (quality/noise trade-off)
	MaxDepth        int   // Recursion cap (bias/cost trade-off)
	TileSize        int   // Work granularity: load balance vs scheduling overhead
	NumWorkers      int   // Worker parallelism (0 = CPU count)
	Seed            int64 // Base seed for the per-tile random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        64,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Summary contains cumulative statistics for a completed render
type Summary struct {
	Width           int
	Height          int
	Tiles           int
	Workers         int
	CompletedPixels int64
	TotalPixels     int64
	Elapsed         time.Duration
	Stats           core.StatsSnapshot
}

// Renderer drives a full tile-parallel render of a scene
type Renderer struct {
	scene    Scene
	config   Config
	progress *Progress
	display  Display
	logger   core.Logger
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(scene Scene, config Config, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:    scene,
		config:   config,
		progress: NewProgress(config.Width * config.Height),
		logger:   logger,
	}
}

// SetDisplay attaches a live-preview collaborator. Must be called
// before Render.
func (r *Renderer) SetDisplay(display Display) {
	r.display = display
}

// Progress returns the progress tracker for polling monitors
func (r *Renderer) Progress() *Progress {
	return r.progress
}

// Render partitions the image into tiles, distributes them across the
// worker pool, and blocks until every tile completes or ctx is
// cancelled. On cancellation the framebuffer is still returned, with
// untouched pixels at their zero value.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, Summary, error) {
	cfg := r.config
	fb := NewFramebuffer(cfg.Width, cfg.Height)
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize, cfg.SamplesPerPixel, cfg.Seed)

	r.progress.Start()

	pt := integrator.NewPathTracer(cfg.MaxDepth)
	tileRenderer := NewTileRenderer(r.scene, pt, fb, r.progress, r.display)
	pool := NewWorkerPool(tileRenderer, cfg.NumWorkers, len(tiles))

	r.logger.Printf("Rendering %dx%d, %d samples/pixel, %d tiles, %d workers...\n",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, len(tiles), pool.NumWorkers())

	startTime := time.Now()
	pool.Start(ctx)

	for _, tile := range tiles {
		pool.Submit(tile)
	}
	pool.CloseSubmit()

	var firstErr error
	completed := 0
	for i := 0; i < len(tiles); i++ {
		result := <-pool.Results()
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
			}
			continue
		}
		completed++
	}
	pool.Wait()

	elapsed := time.Since(startTime)
	snapshot := r.progress.Snapshot()

	summary := Summary{
		Width:           cfg.Width,
		Height:          cfg.Height,
		Tiles:           len(tiles),
		Workers:         pool.NumWorkers(),
		CompletedPixels: snapshot.CompletedPixels,
		TotalPixels:     snapshot.TotalPixels,
		Elapsed:         elapsed,
		Stats:           snapshot.Stats,
	}

	if firstErr != nil {
		r.logger.Printf("Render cancelled after %v (%d/%d tiles)\n", elapsed, completed, len(tiles))
		return fb, summary, firstErr
	}

	r.logger.Printf("Render completed in %v (%.0f rays/sec)\n",
		elapsed, float64(snapshot.Stats.RaysTraced)/elapsed.Seconds())

	return fb, summary, nil
}
