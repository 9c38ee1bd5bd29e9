package material

import (
	"github.com/robalar/go-path-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering.
// The fuzzed reflection is not checked against the surface normal, so it
// can point below the surface; this mirrors the reference renderer.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		perturbation := core.RandomInUnitSphere(sampler).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
