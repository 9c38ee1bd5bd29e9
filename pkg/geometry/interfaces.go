package geometry

import (
	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays. Implemented by both
// individual shapes and the World aggregate, so either can stand in as the
// intersection target for the integrator.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
