package geometry

import (
	"math"
	"testing"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/material"
)

func TestWorldNearestHitWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(core.NewVec3(1, 0, 0)))
	far := NewSphere(core.NewVec3(0, 0, -10), 1.0, material.NewLambertian(core.NewVec3(0, 0, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Nearest hit must win regardless of insertion order
	orders := [][]Shape{{near, far}, {far, near}}
	for _, shapes := range orders {
		world := NewWorld(shapes...)
		hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatal("ray should hit a sphere")
		}
		if math.Abs(hit.T-2.0) > 1e-9 {
			t.Errorf("expected nearest hit at t=2, got t=%v", hit.T)
		}
		if hit.Material != near.Material {
			t.Error("hit record should carry the nearer sphere's material")
		}
	}
}

func TestWorldMissReturnsNothing(t *testing.T) {
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(core.NewVec3(1, 1, 1))),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit || hit != nil {
		t.Error("miss should return no hit record")
	}
}

func TestWorldEmpty(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("empty world should never report a hit")
	}
}

func TestWorldAdd(t *testing.T) {
	world := NewWorld()
	world.Add(NewSphere(core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(core.NewVec3(1, 1, 1))))
	world.Add(
		NewSphere(core.NewVec3(0, 0, -6), 1.0, material.NewLambertian(core.NewVec3(1, 1, 1))),
		NewSphere(core.NewVec3(0, 0, -9), 1.0, material.NewLambertian(core.NewVec3(1, 1, 1))),
	)

	if len(world.Shapes) != 3 {
		t.Errorf("expected 3 shapes, got %d", len(world.Shapes))
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, _ := world.Hit(ray, 0.001, math.Inf(1))
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("expected nearest of three at t=2, got %v", hit.T)
	}
}
