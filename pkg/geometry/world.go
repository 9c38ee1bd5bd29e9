package geometry

import (
	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/material"
)

// World is a flat collection of shapes with no spatial index; intersection
// is a linear scan over all of them
type World struct {
	Shapes []Shape
}

// NewWorld creates a world from the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Hit returns the nearest intersection along the ray within (tMin, tMax).
// Each accepted hit shrinks the search interval, so a later shape can only
// replace the record if it is strictly closer.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
