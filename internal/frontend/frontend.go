// Package frontend contains helpers that are shared by the display and
// input implementations.
package frontend

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

// ErrInvalidColor is returned for colors that are not in the #RRGGBB format.
var ErrInvalidColor = errors.New("invalid color")

// KeyFromRune maps the host characters 0-9 and A-F to the keypad key with
// the same hexadecimal value. Letters are matched case insensitive.
func KeyFromRune(r rune) (machine.Key, bool) {
	switch {
	case r >= '0' && r <= '9':
		return machine.Key(r - '0'), true
	case r >= 'a' && r <= 'f':
		return machine.Key(r - 'a' + 10), true
	case r >= 'A' && r <= 'F':
		return machine.Key(r - 'A' + 10), true
	default:
		return 0, false
	}
}

// ParseColor parses a color in the #RRGGBB or RRGGBB format.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w '%s'", ErrInvalidColor, s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w '%s'", ErrInvalidColor, s)
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}, nil
}

// Image renders the framebuffer to an image with one image pixel per
// display pixel.
func Image(fb *machine.Framebuffer, foreground, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, machine.ScreenWidth, machine.ScreenHeight))
	for y := range machine.ScreenHeight {
		for x := range machine.ScreenWidth {
			c := background
			if fb.Pixel(x, y) {
				c = foreground
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
