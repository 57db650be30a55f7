package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/IcedLeon/Raytracing/pkg/core"
	"github.com/IcedLeon/Raytracing/pkg/renderer"
	"github.com/IcedLeon/Raytracing/pkg/scene"
	"github.com/IcedLeon/Raytracing/web/server"
)

func main() {
	sceneType := flag.String("scene", "random", "Scene type: 'random', 'default' or 'empty'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	tileSize := flag.Int("tile", 64, "Tile size in pixels")
	workers := flag.Int("workers", 0, "Worker count (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("output", "output", "Output directory")
	liveAddr := flag.String("live", "", "Address for the live view server (e.g. :8080), empty to disable")
	timeout := flag.Duration("timeout", 0, "Abort the render after this duration (0 = no limit)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Tiled Raytracer")
		fmt.Println("Usage: raytracing [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType, float64(*width)/float64(*height), *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config := renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		TileSize:        *tileSize,
		NumWorkers:      *workers,
		Seed:            *seed,
	}

	r := renderer.NewRenderer(selectedScene, config, logger)

	if *liveAddr != "" {
		live := server.NewLiveView(*width, *height, r.Progress())
		r.SetDisplay(live)
		go func() {
			if err := live.Serve(*liveAddr); err != nil {
				fmt.Printf("Live view server: %v\n", err)
			}
		}()
	}

	// Ctrl-C aborts the render cooperatively; the partial image is
	// still written out
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	done := make(chan struct{})
	go monitorProgress(ctx, r.Progress(), logger, done)

	fb, summary, renderErr := r.Render(ctx)
	close(done)

	printSummary(logger, summary)
	if renderErr != nil {
		logger.Printf("Render aborted: %v\n", renderErr)
	}

	outputDir := filepath.Join(*output, *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", filename)
}

// createScene builds the scene selected on the command line
func createScene(sceneType string, aspectRatio float64, seed int64) (*scene.Scene, error) {
	switch strings.ToLower(sceneType) {
	case "random":
		return scene.NewRandomScene(aspectRatio, seed), nil
	case "default":
		return scene.NewDefaultScene(aspectRatio), nil
	case "empty":
		return scene.NewEmptyScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// monitorProgress polls the progress surface on a fixed cadence,
// independent of worker completion order
func monitorProgress(ctx context.Context, progress *renderer.Progress, logger core.Logger, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := progress.Snapshot()
			if s.TotalPixels == 0 {
				continue
			}
			percent := 100 * float64(s.CompletedPixels) / float64(s.TotalPixels)
			logger.Printf("Progress: %.1f%% (%d/%d pixels) %.0f px/s\n",
				percent, s.CompletedPixels, s.TotalPixels, s.PixelsPerSecond)
		}
	}
}

func printSummary(logger core.Logger, summary renderer.Summary) {
	logger.Printf("=== Render Statistics ===\n")
	logger.Printf("Resolution: %dx%d (%d tiles, %d workers)\n",
		summary.Width, summary.Height, summary.Tiles, summary.Workers)
	logger.Printf("Pixels: %d/%d\n", summary.CompletedPixels, summary.TotalPixels)
	logger.Printf("Rays traced: %d\n", summary.Stats.RaysTraced)
	logger.Printf("Intersection tests: %d\n", summary.Stats.IntersectionTests)
	logger.Printf("Material evaluations: %d\n", summary.Stats.MaterialScatters)
	if secs := summary.Elapsed.Seconds(); secs > 0 {
		logger.Printf("Rays per second: %.0f\n", float64(summary.Stats.RaysTraced)/secs)
	}
}
