package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/robalar/go-path-tracer/pkg/core"
)

// WritePPM writes linear radiance values as a plain-text P3 PPM image.
// Rows are expected top to bottom; gamma 2.0 correction and the 0..255
// mapping are applied per channel.
func WritePPM(w io.Writer, pixels [][]core.Vec3) error {
	if len(pixels) == 0 || len(pixels[0]) == 0 {
		return fmt.Errorf("empty image")
	}
	height := len(pixels)
	width := len(pixels[0])

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, row := range pixels {
		if len(row) != width {
			return fmt.Errorf("ragged image: row has %d pixels, expected %d", len(row), width)
		}
		for _, pixel := range row {
			r, g, b := pixel.GammaCorrect(2.0).ToRGB8()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
