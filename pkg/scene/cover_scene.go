package scene

import (
	"math/rand"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
	"github.com/robalar/go-path-tracer/pkg/material"
	"github.com/robalar/go-path-tracer/pkg/renderer"
)

// NewCoverScene creates the classic book-cover scene: a grey ground sphere,
// a 22x22 grid of small randomized spheres and three large hero spheres.
// The same seed always produces the same scene.
func NewCoverScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1200,
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        50,
	}

	s := NewScene(cameraConfig, samplingConfig)
	random := rand.New(rand.NewSource(seed))

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the area around the metal hero sphere clear
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randomColor(random))
			case chooseMat < 0.95:
				mat = material.NewMetal(randomColor(random), 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}

			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
