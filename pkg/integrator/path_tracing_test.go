package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
	"github.com/robalar/go-path-tracer/pkg/material"
)

func skyIntegrator() *PathTracingIntegrator {
	return NewPathTracingIntegrator(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
}

func testSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func TestRayColorDepthZeroIsBlack(t *testing.T) {
	pt := skyIntegrator()
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1.0, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))),
	)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(1, 2, 3), core.NewVec3(0, 1, 0)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-1, -1, -1)),
	}
	for _, ray := range rays {
		if got := pt.RayColor(ray, world, testSampler(), 0); got != (core.Vec3{}) {
			t.Errorf("depth 0 must be black for every ray, got %v", got)
		}
	}
}

func TestRayColorBackgroundGradient(t *testing.T) {
	pt := skyIntegrator()
	world := geometry.NewWorld()
	sampler := testSampler()

	// Straight up: pure top-of-gradient sky blue
	up := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), world, sampler, 10)
	if up.Subtract(core.NewVec3(0.5, 0.7, 1.0)).Length() > 1e-9 {
		t.Errorf("straight up should be (0.5,0.7,1.0), got %v", up)
	}

	// Straight down: pure white
	down := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), world, sampler, 10)
	if down.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-9 {
		t.Errorf("straight down should be white, got %v", down)
	}

	// Horizontal: the midpoint blend
	mid := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), world, sampler, 10)
	expected := core.NewVec3(0.75, 0.85, 1.0)
	if mid.Subtract(expected).Length() > 1e-9 {
		t.Errorf("horizontal ray should be %v, got %v", expected, mid)
	}

	// Direction magnitude must not matter
	scaled := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 12, 0)), world, sampler, 10)
	if scaled.Subtract(up).Length() > 1e-9 {
		t.Errorf("gradient should ignore direction magnitude: %v vs %v", scaled, up)
	}
}

func TestRayColorAttenuatesByAlbedo(t *testing.T) {
	pt := skyIntegrator()

	// A mirror floor reflecting a straight-down ray back up into the sky:
	// result must be albedo ⊙ skyTop exactly
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	floor := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewMetal(albedo, 0)),
	)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := pt.RayColor(ray, floor, testSampler(), 10)
	expected := albedo.MultiplyVec(core.NewVec3(0.5, 0.7, 1.0))
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

// absorber always reports no scatter
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func TestRayColorNoScatterReturnsWhite(t *testing.T) {
	pt := skyIntegrator()
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 1.0, absorber{}),
	)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, world, testSampler(), 10)
	if got != core.NewVec3(1, 1, 1) {
		t.Errorf("no-scatter branch should return white, got %v", got)
	}
}

func TestRayColorDeepRecursionTerminates(t *testing.T) {
	pt := skyIntegrator()

	// Two facing mirrors trap the ray; depth bounds the bounce count and
	// the result collapses to black once the budget is spent
	mirror := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -10), 4, mirror),
		geometry.NewSphere(core.NewVec3(0, 0, 10), 4, mirror),
	)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, world, testSampler(), 50)
	if got != (core.Vec3{}) {
		t.Errorf("trapped ray should exhaust its depth and return black, got %v", got)
	}
}

func TestRayColorIsDeterministicPerSampler(t *testing.T) {
	pt := skyIntegrator()
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, -2), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0.5, -2), 0.5, material.NewDielectric(1.5)),
	)
	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(0, 0, -1))

	a := pt.RayColor(ray, world, core.NewRandomSampler(rand.New(rand.NewSource(7))), 50)
	b := pt.RayColor(ray, world, core.NewRandomSampler(rand.New(rand.NewSource(7))), 50)
	if a != b {
		t.Errorf("identical seeds should give identical radiance: %v vs %v", a, b)
	}
}

func TestRayColorHitsNearestSurface(t *testing.T) {
	pt := skyIntegrator()

	// A black absorbing-ish sphere hidden behind a mirror: the mirror must
	// win, so the result equals the pure mirror bounce
	mirror := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, mirror),
		geometry.NewSphere(core.NewVec3(0, -1002, 0), 1, material.NewLambertian(core.Vec3{})),
	)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := pt.RayColor(ray, world, testSampler(), 10)
	if got.Subtract(core.NewVec3(0.5, 0.7, 1.0)).Length() > 1e-9 {
		t.Errorf("mirror in front should reflect sky, got %v", got)
	}
}

func TestBackgroundGradientRange(t *testing.T) {
	pt := skyIntegrator()
	sampler := testSampler()
	world := geometry.NewWorld()

	for i := 0; i < 100; i++ {
		dir := core.RandomOnUnitSphere(sampler)
		c := pt.RayColor(core.NewRay(core.Vec3{}, dir), world, sampler, 1)
		if c.X < 0.5-1e-9 || c.X > 1+1e-9 || math.IsNaN(c.Y) {
			t.Fatalf("background color out of gradient range: %v for direction %v", c, dir)
		}
	}
}
