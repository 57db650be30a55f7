package geometry

import "github.com/IcedLeon/Raytracing/pkg/core"

// HittableList aggregates primitives and reports the closest hit by
// linear scan. This is O(N) per ray and the asymptotic bottleneck of
// the renderer; the scene model is deliberately a flat list.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given primitives
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends primitives to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit returns the nearest hit across the whole list, shrinking the
// search interval to the closest hit found so far
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
