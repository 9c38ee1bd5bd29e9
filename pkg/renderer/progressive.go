package renderer

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/robalar/go-path-tracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int // Size of each tile (64x64 recommended)
	InitialSamples     int // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int // Maximum total samples per pixel
	MaxPasses          int // Maximum number of passes
	NumWorkers         int // Number of parallel workers (0 = use CPU count)
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 100,
		MaxPasses:          6,
		NumWorkers:         0, // Auto-detect CPU count
	}
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
	Random          *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	// Deterministic generator per tile; +42 to avoid seed 0
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(int64(id + 42))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			bounds := image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height))
			tiles = append(tiles, NewTile(id, bounds))
			id++
		}
	}
	return tiles
}

// PassResult contains the result of a single progressive pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// ProgressiveRaytracer manages progressive rendering with multiple passes
type ProgressiveRaytracer struct {
	scene         Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	pixelStats    [][]PixelStats // Shared pixel statistics (global image coordinates)
	workerPool    *WorkerPool
	logger        core.Logger
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(scene Scene, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	camera := scene.GetCamera()
	width, height := camera.Width, camera.Height

	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &ProgressiveRaytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		tiles:      NewTileGrid(width, height, config.TileSize),
		pixelStats: NewPixelStatsGrid(width, height),
		workerPool: NewWorkerPool(scene, config.TileSize, config.NumWorkers),
		logger:     logger,
	}
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	// Special case: if only 1 pass, use all samples
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// First pass is a quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass

	// The final pass takes whatever is left
	if passNumber == pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return targetSamples
}

// RenderPass renders a single progressive pass using the worker pool
func (pr *ProgressiveRaytracer) RenderPass(passNumber int) (*image.RGBA, RenderStats, error) {
	targetSamples := pr.getSamplesForPass(passNumber)

	pr.logger.Printf("Pass %d: target %d samples per pixel (%d workers)\n",
		passNumber, targetSamples, pr.workerPool.GetNumWorkers())

	if passNumber == 1 {
		pr.workerPool.Start()
	}

	for taskID, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		})
	}

	for range pr.tiles {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, result.Error
		}
		pr.tiles[result.TaskID].PassesCompleted++
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

// RenderProgressive renders all passes, sending each pass result on the
// returned channel. The caller should drain both channels; rendering stops
// early when the context is cancelled.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)
		defer pr.workerPool.Stop()

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()
			img, stats, err := pr.RenderPass(pass)
			if err != nil {
				errChan <- err
				return
			}

			actualSamples := int(stats.AverageSamples)
			pr.logger.Printf("Pass %d completed in %v (%d samples/pixel)\n",
				pass, time.Since(startTime), actualSamples)

			isLast := pass == pr.config.MaxPasses || actualSamples >= pr.config.MaxSamplesPerPixel
			select {
			case passChan <- PassResult{PassNumber: pass, Image: img, Stats: stats, IsLast: isLast}:
			case <-ctx.Done():
				return
			}

			if actualSamples >= pr.config.MaxSamplesPerPixel {
				break
			}
		}
	}()

	return passChan, errChan
}

// assembleCurrentImage creates an image from the current pixel stats and
// calculates render statistics in a single pass
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))

	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
		MinSamples:  pr.config.MaxSamplesPerPixel,
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, vec3ToColor(pixel.GetColor()))

			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}

// LinearImage returns the averaged linear radiance per pixel, rows top to
// bottom. Gamma correction and discretization are left to the output layer.
func (pr *ProgressiveRaytracer) LinearImage() [][]core.Vec3 {
	pixels := make([][]core.Vec3, pr.height)
	for y := 0; y < pr.height; y++ {
		pixels[y] = make([]core.Vec3, pr.width)
		for x := 0; x < pr.width; x++ {
			pixels[y][x] = pr.pixelStats[y][x].GetColor()
		}
	}
	return pixels
}
