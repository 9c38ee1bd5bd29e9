package core

import (
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("point %v outside unit sphere (length² = %v)", p, p.LengthSquared())
		}
	}
}

func TestRandomInUnitSphereCoversAllOctants(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	octants := make(map[[3]bool]int)
	for i := 0; i < 2000; i++ {
		p := RandomInUnitSphere(sampler)
		octants[[3]bool{p.X > 0, p.Y > 0, p.Z > 0}]++
	}

	if len(octants) != 8 {
		t.Errorf("expected samples in all 8 octants, got %d", len(octants))
	}
}

func TestRandomOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomOnUnitSphere(sampler)
		if !almostEqual(p.Length(), 1.0) {
			t.Fatalf("direction %v not on unit sphere (length = %v)", p, p.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("disk point %v should lie in the z=0 plane", p)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("point %v outside unit disk (length² = %v)", p, p.LengthSquared())
		}
	}
}

func TestRandomSamplerRanges(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		if v := sampler.Get1D(); v < 0 || v >= 1 {
			t.Fatalf("Get1D out of [0,1): %v", v)
		}
		v2 := sampler.Get2D()
		if v2.X < 0 || v2.X >= 1 || v2.Y < 0 || v2.Y >= 1 {
			t.Fatalf("Get2D out of [0,1): %v", v2)
		}
		v3 := sampler.Get3D()
		if v3.X < 0 || v3.X >= 1 || v3.Y < 0 || v3.Y >= 1 || v3.Z < 0 || v3.Z >= 1 {
			t.Fatalf("Get3D out of [0,1): %v", v3)
		}
	}
}

func TestSamplersAreDeterministicPerSeed(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(99)))
	b := NewRandomSampler(rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		if RandomInUnitSphere(a) != RandomInUnitSphere(b) {
			t.Fatal("identical seeds should produce identical sample streams")
		}
	}
}
