package integrator

import (
	"math"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
)

// Intersections closer than this are ignored to keep scattered rays from
// re-hitting the surface they just left (shadow acne)
const tMinEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
// with a sky-gradient background
type PathTracingIntegrator struct {
	TopColor    core.Vec3 // Background color straight up
	BottomColor core.Vec3 // Background color straight down
}

// NewPathTracingIntegrator creates a path tracer with the given sky gradient
func NewPathTracingIntegrator(topColor, bottomColor core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{TopColor: topColor, BottomColor: bottomColor}
}

// RayColor computes the color for a single ray. Each bounce multiplies in
// the material's attenuation and recurses with one less remaining bounce;
// the recursion therefore always terminates.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// Out of bounces: no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// No current material takes this branch; it stands in for future
		// absorbing or emissive materials
		return core.NewVec3(1, 1, 1)
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}

// backgroundGradient blends from the bottom color to the top color by the
// vertical component of the ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
