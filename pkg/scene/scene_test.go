package scene

import (
	"testing"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
	"github.com/robalar/go-path-tracer/pkg/renderer"
)

func TestSceneBackgroundColors(t *testing.T) {
	s := NewDefaultScene()
	top, bottom := s.GetBackgroundColors()
	if top != core.NewVec3(0.5, 0.7, 1.0) {
		t.Errorf("expected blue sky top color, got %v", top)
	}
	if bottom != core.NewVec3(1.0, 1.0, 1.0) {
		t.Errorf("expected white bottom color, got %v", bottom)
	}
}

func TestDefaultSceneContents(t *testing.T) {
	s := NewDefaultScene()
	if s.GetPrimitiveCount() != 5 {
		t.Errorf("expected 5 spheres, got %d", s.GetPrimitiveCount())
	}
	if s.GetCamera() == nil {
		t.Fatal("scene should have a camera")
	}
	if s.GetSamplingConfig().MaxDepth != 50 {
		t.Errorf("expected max depth 50, got %d", s.GetSamplingConfig().MaxDepth)
	}
}

func TestDefaultSceneCameraOverrides(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{Width: 200, VFov: 90})
	if s.CameraConfig.Width != 200 {
		t.Errorf("width override not applied: %d", s.CameraConfig.Width)
	}
	if s.CameraConfig.VFov != 90 {
		t.Errorf("vfov override not applied: %v", s.CameraConfig.VFov)
	}
	// Untouched fields keep their defaults
	if s.CameraConfig.Center != core.NewVec3(-2, 2, 1) {
		t.Errorf("camera center should keep default, got %v", s.CameraConfig.Center)
	}
}

func TestCoverSceneDeterministicForSeed(t *testing.T) {
	a := NewCoverScene(7)
	b := NewCoverScene(7)

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("same seed produced different counts: %d vs %d",
			a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	// Spot-check sphere placement beyond the fixed ground sphere
	sa := a.World.Shapes[1].(*geometry.Sphere)
	sb := b.World.Shapes[1].(*geometry.Sphere)
	if sa.Center != sb.Center {
		t.Errorf("same seed produced different placements: %v vs %v", sa.Center, sb.Center)
	}
}

func TestCoverSceneStructure(t *testing.T) {
	s := NewCoverScene(1)

	// Ground + up to 484 grid spheres + 3 hero spheres; some grid cells are
	// skipped near the metal hero sphere
	count := s.GetPrimitiveCount()
	if count < 400 || count > 488 {
		t.Errorf("unexpected sphere count %d", count)
	}

	cfg := s.CameraConfig
	if cfg.Center != core.NewVec3(13, 2, 3) {
		t.Errorf("unexpected camera center %v", cfg.Center)
	}
	if cfg.AspectRatio != 3.0/2.0 {
		t.Errorf("unexpected aspect ratio %v", cfg.AspectRatio)
	}
	if cfg.FocusDistance != 10.0 {
		t.Errorf("unexpected focus distance %v", cfg.FocusDistance)
	}
	if s.GetSamplingConfig().SamplesPerPixel != 500 {
		t.Errorf("unexpected samples per pixel %d", s.GetSamplingConfig().SamplesPerPixel)
	}
}
