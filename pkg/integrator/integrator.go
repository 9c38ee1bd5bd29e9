package integrator

import (
	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear radiance carried back along a ray with
	// the given number of remaining bounces
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3
}
