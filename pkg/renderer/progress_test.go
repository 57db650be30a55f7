package renderer

import (
	"sync"
	"testing"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

func TestProgress_AddPixelsAndSnapshot(t *testing.T) {
	progress := NewProgress(100)

	snapshot := progress.Snapshot()
	if snapshot.CompletedPixels != 0 {
		t.Errorf("Expected 0 completed pixels, got %d", snapshot.CompletedPixels)
	}
	if snapshot.TotalPixels != 100 {
		t.Errorf("Expected 100 total pixels, got %d", snapshot.TotalPixels)
	}

	progress.AddPixels(30)
	progress.AddPixels(20)

	snapshot = progress.Snapshot()
	if snapshot.CompletedPixels != 50 {
		t.Errorf("Expected 50 completed pixels, got %d", snapshot.CompletedPixels)
	}
	if snapshot.Elapsed < 0 {
		t.Errorf("Expected non-negative elapsed time, got %v", snapshot.Elapsed)
	}
}

func TestProgress_SnapshotIncludesStats(t *testing.T) {
	progress := NewProgress(10)

	local := core.StatsSnapshot{RaysTraced: 7, IntersectionTests: 5, MaterialScatters: 3}
	progress.Stats().Merge(local)

	stats := progress.Snapshot().Stats
	if stats.RaysTraced != 7 || stats.IntersectionTests != 5 || stats.MaterialScatters != 3 {
		t.Errorf("Expected merged stats {7 5 3}, got %+v", stats)
	}
}

func TestProgress_StartResets(t *testing.T) {
	progress := NewProgress(10)
	progress.AddPixels(10)
	progress.Stats().Merge(core.StatsSnapshot{RaysTraced: 42})

	progress.Start()

	snapshot := progress.Snapshot()
	if snapshot.CompletedPixels != 0 {
		t.Errorf("Expected reset pixel count, got %d", snapshot.CompletedPixels)
	}
	if snapshot.Stats.RaysTraced != 0 {
		t.Errorf("Expected reset stats, got %d rays", snapshot.Stats.RaysTraced)
	}
}

func TestProgress_ConcurrentUpdates(t *testing.T) {
	progress := NewProgress(8000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				progress.AddPixels(1)
			}
		}()
	}

	// Poll concurrently while workers update
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			s := progress.Snapshot()
			if s.CompletedPixels < 0 || s.CompletedPixels > 8000 {
				t.Errorf("Snapshot out of range: %d", s.CompletedPixels)
				return
			}
		}
	}()

	wg.Wait()
	<-done

	if got := progress.Snapshot().CompletedPixels; got != 8000 {
		t.Errorf("Expected 8000 completed pixels, got %d", got)
	}
}
