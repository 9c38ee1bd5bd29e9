package scene

import (
	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
	"github.com/robalar/go-path-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.World
	TopColor       core.Vec3 // Background gradient color straight up
	BottomColor    core.Vec3 // Background gradient color straight down
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
}

// NewScene creates a scene with the given camera configuration and the
// standard sky gradient background
func NewScene(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		World:          geometry.NewWorld(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}

// Add appends shapes to the scene's world
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.World.Add(shapes...)
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the scene's world
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetSamplingConfig returns the sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Shapes)
}
