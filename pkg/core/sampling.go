package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere generates a uniform random point inside the unit ball
// by rejection sampling the [-1,1]³ cube. The loop terminates with
// probability 1 (~2.03 expected tries).
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomOnUnitSphere generates a uniform random direction on the unit sphere
// surface by normalizing a point from the unit ball. The rejection sampler
// excludes the origin with probability 1, so the normalization is safe.
func RandomOnUnitSphere(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk generates a uniform random point in the unit disk on the
// z=0 plane by rejection sampling the [-1,1]² square (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
