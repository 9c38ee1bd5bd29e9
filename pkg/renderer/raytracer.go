package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/geometry"
	"github.com/robalar/go-path-tracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid a dependency cycle with the scene package
type Scene interface {
	GetCamera() *Camera
	GetWorld() *geometry.World
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetSamplingConfig() SamplingConfig
}

// Raytracer renders pixels of a scene through an integrator
type Raytracer struct {
	scene      Scene
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	random     *rand.Rand
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scene Scene) *Raytracer {
	topColor, bottomColor := scene.GetBackgroundColors()
	return &Raytracer{
		scene:      scene,
		camera:     scene.GetCamera(),
		integrator: integrator.NewPathTracingIntegrator(topColor, bottomColor),
		config:     scene.GetSamplingConfig(),
		random:     rand.New(rand.NewSource(42)), // Deterministic for testing
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// RenderBounds renders pixels within the given bounds into the shared pixel
// stats array, topping each pixel up to targetSamples samples. Bounds of
// concurrent calls must not overlap.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand, targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	sampler := core.NewRandomSampler(random)
	world := rt.scene.GetWorld()

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			before := ps.SampleCount

			for ps.SampleCount < targetSamples {
				ray := rt.pixelRay(i, j, random, sampler)
				ps.AddSample(rt.integrator.RayColor(ray, world, sampler, rt.config.MaxDepth))
			}

			used := ps.SampleCount - before
			stats.TotalSamples += used
			stats.MinSamples = min(stats.MinSamples, used)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, used)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// pixelRay builds a jittered camera ray for image pixel (i, j), with j
// counted from the top of the image
func (rt *Raytracer) pixelRay(i, j int, random *rand.Rand, sampler core.Sampler) core.Ray {
	// Viewport-normalized coordinates; t runs bottom to top
	s := (float64(i) + random.Float64()) / float64(rt.camera.Width-1)
	t := (float64(rt.camera.Height-1-j) + random.Float64()) / float64(rt.camera.Height-1)
	return rt.camera.GetRay(s, t, sampler)
}

// RenderPass renders the full image with multi-sampling in a single pass
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.camera.Width, rt.camera.Height
	pixelStats := NewPixelStatsGrid(width, height)

	bounds := image.Rect(0, 0, width, height)
	stats := rt.RenderBounds(bounds, pixelStats, rt.random, rt.config.SamplesPerPixel)

	img := image.NewRGBA(bounds)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img, stats
}

// vec3ToColor converts a linear color to RGBA with gamma correction and the
// clamped 0..255 mapping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2.0: square root per channel
	colorVec = colorVec.GammaCorrect(2.0)
	r, g, b := colorVec.ToRGB8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
