// Package screenshot exports the display as a PNG image.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"golang.org/x/image/draw"
)

// Options of the exported image.
type Options struct {
	Scale      int
	Foreground color.RGBA
	Background color.RGBA
}

// Encode writes the framebuffer as PNG, every display pixel scaled to a
// square of Scale image pixels.
func Encode(w io.Writer, fb *machine.Framebuffer, options Options) error {
	scale := max(options.Scale, 1)
	src := frontend.Image(fb, options.Foreground, options.Background)
	dst := image.NewRGBA(image.Rect(0, 0, machine.ScreenWidth*scale, machine.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Save writes the framebuffer as PNG file.
func Save(path string, fb *machine.Framebuffer, options Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w", path, closeErr)
		}
	}()

	return Encode(file, fb, options)
}
