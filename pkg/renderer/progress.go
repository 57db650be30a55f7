package renderer

import (
	"sync/atomic"
	"time"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// Progress tracks rendering completion for monitoring collaborators.
// Workers advance the completed-pixel counter; a monitor on another
// goroutine polls Snapshot concurrently, so all state is atomic.
type Progress struct {
	completedPixels atomic.Int64
	totalPixels     int64
	startNanos      atomic.Int64
	stats           core.RenderStats
}

// ProgressSnapshot is a read-only view of rendering progress
type ProgressSnapshot struct {
	CompletedPixels int64
	TotalPixels     int64
	Elapsed         time.Duration
	PixelsPerSecond float64
	Stats           core.StatsSnapshot
}

// NewProgress creates a progress tracker for totalPixels pixels
func NewProgress(totalPixels int) *Progress {
	p := &Progress{totalPixels: int64(totalPixels)}
	p.startNanos.Store(time.Now().UnixNano())
	return p
}

// Start resets the clock and counters for a new render
func (p *Progress) Start() {
	p.completedPixels.Store(0)
	p.stats.Reset()
	p.startNanos.Store(time.Now().UnixNano())
}

// AddPixels records n newly completed pixels
func (p *Progress) AddPixels(n int) {
	p.completedPixels.Add(int64(n))
}

// Stats returns the shared render counters for workers to merge into
func (p *Progress) Stats() *core.RenderStats {
	return &p.stats
}

// Snapshot returns the current progress for polling monitors
func (p *Progress) Snapshot() ProgressSnapshot {
	completed := p.completedPixels.Load()
	elapsed := time.Duration(time.Now().UnixNano() - p.startNanos.Load())

	pixelsPerSecond := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		pixelsPerSecond = float64(completed) / secs
	}

	return ProgressSnapshot{
		CompletedPixels: completed,
		TotalPixels:     p.totalPixels,
		Elapsed:         elapsed,
		PixelsPerSecond: pixelsPerSecond,
		Stats:           p.stats.Snapshot(),
	}
}
