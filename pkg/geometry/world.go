package geometry

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// World is an ordered collection of surfaces. It is read-only while a frame renders.
type World struct {
	items []Hittable
}

// NewWorld creates a world from the given surfaces
func NewWorld(items ...Hittable) *World {
	return &World{items: items}
}

// Add appends a surface to the world
func (w *World) Add(item Hittable) {
	w.items = append(w.items, item)
}

// Len returns the number of surfaces
func (w *World) Len() int {
	return len(w.items)
}

// Items returns the surfaces in insertion order
func (w *World) Items() []Hittable {
	return w.items
}

// Hit returns the closest intersection in [tMin, tMax]. On equal t the
// surface added first wins.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, item := range w.items {
		if hit, ok := item.Hit(ray, tMin, closestSoFar); ok && hit.T < closestSoFar {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
