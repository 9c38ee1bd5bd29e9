package output

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/robalar/go-path-tracer/pkg/core"
)

// SaveImage writes an image to disk; the format is chosen from the file
// extension (.png, .jpg, .bmp, ...)
func SaveImage(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save image %s: %w", path, err)
	}
	return nil
}

// SavePPM writes linear radiance values to a plain-text PPM file
func SavePPM(path string, pixels [][]core.Vec3) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	defer f.Close()

	if err := WritePPM(f, pixels); err != nil {
		return fmt.Errorf("write ppm %s: %w", path, err)
	}
	return nil
}

// SaveThumbnail writes a downscaled copy of the image alongside saving the
// full render, for quick previews and uploads
func SaveThumbnail(path string, img image.Image, maxSize uint) error {
	thumb := resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)
	return SaveImage(path, thumb)
}

// ThumbnailPath derives the thumbnail filename from an output path, e.g.
// render.png -> render_thumb.png
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
