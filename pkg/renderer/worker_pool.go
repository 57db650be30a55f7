package renderer

import (
	"context"
	"sync"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// TileResult contains the outcome of rendering one tile
type TileResult struct {
	TileID int
	Pixels int                // Pixels actually written
	Stats  core.StatsSnapshot // Counters accumulated by this tile
	Err    error              // Non-nil when the tile was cancelled
}

// WorkerPool distributes tiles across a fixed set of goroutines.
// Both channels are buffered for the full tile count, so workers never
// block on a slow collector and the collector never deadlocks after an
// early cancellation.
type WorkerPool struct {
	taskQueue   chan *Tile
	resultQueue chan TileResult
	numWorkers  int
	renderer    *TileRenderer
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers workers rendering through
// the given tile renderer, sized for capacity queued tiles
func NewWorkerPool(renderer *TileRenderer, numWorkers, capacity int) *WorkerPool {
	return &WorkerPool{
		taskQueue:   make(chan *Tile, capacity),
		resultQueue: make(chan TileResult, capacity),
		numWorkers:  numWorkers,
		renderer:    renderer,
	}
}

// Start launches the workers. Each worker pulls tiles until the task
// queue is closed, observing ctx between tiles and between rows.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()
	for tile := range wp.taskQueue {
		wp.resultQueue <- wp.renderer.RenderTile(ctx, tile)
	}
}

// Submit queues a tile for rendering
func (wp *WorkerPool) Submit(tile *Tile) {
	wp.taskQueue <- tile
}

// CloseSubmit signals that no more tiles will be submitted, letting
// workers exit once the queue drains
func (wp *WorkerPool) CloseSubmit() {
	close(wp.taskQueue)
}

// Results returns the channel of completed tile results
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// Wait blocks until all workers have exited
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// NumWorkers returns the worker count
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
