package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"

	"github.com/IcedLeon/Raytracing/pkg/core"
	"github.com/IcedLeon/Raytracing/pkg/renderer"
)

// LiveView is a browser-based live preview of an in-progress render.
// It implements renderer.Display over a mutex-guarded frame; workers
// push finished pixels, HTTP clients poll the current frame and the
// progress snapshot.
type LiveView struct {
	mu    sync.Mutex
	frame *image.RGBA

	progress *renderer.Progress
	console  *Console
}

// NewLiveView creates a live view for a width×height render reading
// progress from the given tracker
func NewLiveView(width, height int, progress *renderer.Progress) *LiveView {
	return &LiveView{
		frame:    image.NewRGBA(image.Rect(0, 0, width, height)),
		progress: progress,
		console:  NewConsole(200),
	}
}

// Logger returns a logger that mirrors messages to the web console
func (lv *LiveView) Logger() core.Logger {
	return lv.console.Logger()
}

// UpdatePixel implements renderer.Display
func (lv *LiveView) UpdatePixel(x, y int, color core.Vec3) {
	lv.mu.Lock()
	lv.frame.SetRGBA(x, y, renderer.QuantizeColor(color))
	lv.mu.Unlock()
}

// UpdateRegion implements renderer.Display. Colors are row-major
// within bounds; one lock covers the whole batch.
func (lv *LiveView) UpdateRegion(bounds image.Rectangle, colors []core.Vec3) {
	lv.mu.Lock()
	defer lv.mu.Unlock()

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if i >= len(colors) {
				return
			}
			lv.frame.SetRGBA(x, y, renderer.QuantizeColor(colors[i]))
			i++
		}
	}
}

// ProgressResponse is the JSON payload served at /progress
type ProgressResponse struct {
	CompletedPixels   int64   `json:"completedPixels"`
	TotalPixels       int64   `json:"totalPixels"`
	ElapsedMs         int64   `json:"elapsedMs"`
	PixelsPerSecond   float64 `json:"pixelsPerSecond"`
	RaysTraced        int64   `json:"raysTraced"`
	IntersectionTests int64   `json:"intersectionTests"`
	MaterialScatters  int64   `json:"materialScatters"`
}

// Handler returns the HTTP handler for the live view
func (lv *LiveView) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", lv.handleIndex)
	mux.HandleFunc("/frame.png", lv.handleFrame)
	mux.HandleFunc("/progress", lv.handleProgress)
	mux.HandleFunc("/console", lv.console.handleMessages)
	return mux
}

// Serve starts the live view server on addr. Blocks until the server
// exits.
func (lv *LiveView) Serve(addr string) error {
	log.Printf("Live view on http://localhost%s", addr)
	return http.ListenAndServe(addr, lv.Handler())
}

func (lv *LiveView) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

// handleFrame encodes the current frame as PNG. The frame is copied
// under the lock so encoding does not stall the workers.
func (lv *LiveView) handleFrame(w http.ResponseWriter, r *http.Request) {
	lv.mu.Lock()
	frame := image.NewRGBA(lv.frame.Rect)
	copy(frame.Pix, lv.frame.Pix)
	lv.mu.Unlock()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, frame); err != nil {
		log.Printf("frame encode: %v", err)
	}
}

func (lv *LiveView) handleProgress(w http.ResponseWriter, r *http.Request) {
	snapshot := lv.progress.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProgressResponse{
		CompletedPixels:   snapshot.CompletedPixels,
		TotalPixels:       snapshot.TotalPixels,
		ElapsedMs:         snapshot.Elapsed.Milliseconds(),
		PixelsPerSecond:   snapshot.PixelsPerSecond,
		RaysTraced:        snapshot.Stats.RaysTraced,
		IntersectionTests: snapshot.Stats.IntersectionTests,
		MaterialScatters:  snapshot.Stats.MaterialScatters,
	})
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Raytracing Live View</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<h3>Raytracing Live View</h3>
<img id="frame" src="/frame.png">
<pre id="progress"></pre>
<script>
setInterval(function() {
  document.getElementById('frame').src = '/frame.png?t=' + Date.now();
  fetch('/progress').then(r => r.json()).then(p => {
    var pct = p.totalPixels ? (100 * p.completedPixels / p.totalPixels).toFixed(1) : 0;
    document.getElementById('progress').textContent =
      pct + '% (' + p.completedPixels + '/' + p.totalPixels + ' pixels) ' +
      Math.round(p.pixelsPerSecond) + ' px/s, ' + p.raysTraced + ' rays';
  });
}, 500);
</script>
</body>
</html>
`
