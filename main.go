package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robalar/go-path-tracer/pkg/core"
	"github.com/robalar/go-path-tracer/pkg/output"
	"github.com/robalar/go-path-tracer/pkg/renderer"
	"github.com/robalar/go-path-tracer/pkg/scene"
	"github.com/robalar/go-path-tracer/pkg/upload"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	seed := flag.Int64("seed", 42, "Seed for randomized scene generation")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	passes := flag.Int("passes", 6, "Number of progressive passes")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	thumbnail := flag.Bool("thumbnail", false, "Also save a 256px thumbnail")
	uploadFlag := flag.Bool("upload", false, "Upload the result to S3-compatible storage")
	envFile := flag.String("env", ".env", "Path to .env file with upload settings")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: path-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres over a matte ground")
		fmt.Println("  cover   - Randomized grid of small spheres with three hero spheres")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	selectedScene, err := createScene(*sceneType, *seed, *width)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	samplingConfig := selectedScene.GetSamplingConfig()
	if *samples > 0 {
		samplingConfig.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		samplingConfig.MaxDepth = *depth
	}
	selectedScene.SamplingConfig = samplingConfig

	config := renderer.DefaultProgressiveConfig()
	config.MaxSamplesPerPixel = samplingConfig.SamplesPerPixel
	config.MaxPasses = *passes
	config.NumWorkers = *workers

	camera := selectedScene.GetCamera()
	fmt.Printf("Rendering '%s' scene at %dx%d, %d samples/pixel, %d spheres\n",
		*sceneType, camera.Width, camera.Height,
		samplingConfig.SamplesPerPixel, selectedScene.GetPrimitiveCount())

	pr := renderer.NewProgressiveRaytracer(selectedScene, config, renderer.NewDefaultLogger())

	startTime := time.Now()
	passChan, errChan := pr.RenderProgressive(context.Background())

	var final renderer.PassResult
	for result := range passChan {
		final = result
	}
	if err := <-errChan; err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		final.Stats.AverageSamples, final.Stats.MinSamples, final.Stats.MaxSamplesUsed)

	path, err := saveRender(*sceneType, *format, final, pr.LinearImage())
	if err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", path)

	if *thumbnail && *format == "png" {
		thumbPath := output.ThumbnailPath(path)
		if err := output.SaveThumbnail(thumbPath, final.Image, 256); err != nil {
			fmt.Printf("Error saving thumbnail: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	if *uploadFlag {
		if err := uploadRender(path, *format, *envFile); err != nil {
			fmt.Printf("Error uploading render: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Uploaded %s\n", filepath.Base(path))
	}
}

// createScene builds a scene by name, optionally overriding the image width
func createScene(sceneType string, seed int64, width int) (*scene.Scene, error) {
	overrides := renderer.CameraConfig{Width: width}
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(overrides), nil
	case "cover":
		return scene.NewCoverScene(seed, overrides), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// saveRender writes the final pass to a timestamped file and returns its path
func saveRender(sceneType, format string, final renderer.PassResult, pixels [][]core.Vec3) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	outputDir := filepath.Join("output", sceneType)

	switch format {
	case "png":
		path := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
		return path, output.SaveImage(path, final.Image)
	case "ppm":
		path := filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp))
		return path, output.SavePPM(path, pixels)
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

// uploadRender pushes the saved file to object storage
func uploadRender(path, format, envFile string) error {
	cfg, err := upload.LoadConfig(envFile)
	if err != nil {
		return err
	}
	uploader, err := upload.NewUploader(cfg)
	if err != nil {
		return err
	}

	contentType := "image/png"
	if format == "ppm" {
		contentType = "image/x-portable-pixmap"
	}
	return uploader.UploadFile(context.Background(), filepath.Base(path), path, contentType)
}
