package scene

import (
	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
	"github.com/robalar/go-path-tracer/pkg/material"
	"github.com/robalar/go-path-tracer/pkg/renderer"
)

// NewDefaultScene creates the classic five-sphere scene: a matte ground, a
// matte center sphere, a hollow glass sphere on the left and a fuzzy metal
// sphere on the right
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	s := NewScene(cameraConfig, samplingConfig)

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		// Negative radius flips the normal, making the glass sphere hollow
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	return s
}
