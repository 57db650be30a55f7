package core

import "sync/atomic"

// RenderStats aggregates raytracing counters across worker threads.
// All fields are atomic; workers accumulate locally and merge once per
// tile to keep contention low.
type RenderStats struct {
	RaysTraced        atomic.Int64 // Path segments traced
	IntersectionTests atomic.Int64 // Scene intersection queries
	MaterialScatters  atomic.Int64 // Material scatter evaluations
}

// StatsSnapshot is a point-in-time copy of the counters
type StatsSnapshot struct {
	RaysTraced        int64
	IntersectionTests int64
	MaterialScatters  int64
}

// Snapshot returns a consistent-enough copy for reporting; counters
// are read independently, which is fine for monitoring output
func (s *RenderStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		RaysTraced:        s.RaysTraced.Load(),
		IntersectionTests: s.IntersectionTests.Load(),
		MaterialScatters:  s.MaterialScatters.Load(),
	}
}

// Merge adds a local snapshot into the shared counters
func (s *RenderStats) Merge(local StatsSnapshot) {
	s.RaysTraced.Add(local.RaysTraced)
	s.IntersectionTests.Add(local.IntersectionTests)
	s.MaterialScatters.Add(local.MaterialScatters)
}

// Reset zeroes all counters
func (s *RenderStats) Reset() {
	s.RaysTraced.Store(0)
	s.IntersectionTests.Store(0)
	s.MaterialScatters.Store(0)
}
