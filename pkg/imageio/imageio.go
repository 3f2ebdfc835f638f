// Package imageio converts a rendered pixel buffer into an output file,
// choosing the encoding from the output path's extension: PNG for `.png`,
// PPM (P3) for any other extension or none, following `src/image_exporter.rs`
// in the original implementation this renderer is modeled on.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/afnanenayet/nib/pkg/core"
)

// ErrInvalidDimensions is returned when the pixel buffer's length doesn't
// match width*height.
var ErrInvalidDimensions = errors.New("imageio: pixel buffer length does not match width*height")

// toByte converts a linear color channel in [0,1] to an 8-bit channel via
// v ↦ ⌊v·255⌋, clamping out-of-range values rather than wrapping.
func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Write encodes pixels (row-major, top-to-bottom, width*height long) to
// path, selecting PPM or PNG by path's extension. It creates any missing
// parent directory, mirroring the teacher's saveImageToFile.
func Write(path string, pixels []core.Vec3, width, height int) error {
	if len(pixels) != width*height {
		return ErrInvalidDimensions
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return writePNG(file, pixels, width, height)
	default:
		return writePPM(file, pixels, width, height)
	}
}

func writePPM(w *os.File, pixels []core.Vec3, width, height int) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for _, p := range pixels {
		if _, err := fmt.Fprintf(buf, "%d %d %d\n", toByte(p.X), toByte(p.Y), toByte(p.Z)); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func writePNG(w *os.File, pixels []core.Vec3, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{R: toByte(p.X), G: toByte(p.Y), B: toByte(p.Z), A: 255})
		}
	}
	return png.Encode(w, img)
}
