package machine

import "strings"

// Display dimensions in pixels.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer is the monochrome 64x32 display. Coordinates passed to its
// methods wrap around both axes.
type Framebuffer struct {
	pixels [ScreenHeight][ScreenWidth]bool
}

// Clear unsets all pixels.
func (f *Framebuffer) Clear() {
	f.pixels = [ScreenHeight][ScreenWidth]bool{}
}

// Pixel returns whether the pixel at the given position is set.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[wrap(y, ScreenHeight)][wrap(x, ScreenWidth)]
}

// Flip toggles the pixel at the given position and returns true if the
// pixel was set before, which means that it got erased.
func (f *Framebuffer) Flip(x, y int) bool {
	row, col := wrap(y, ScreenHeight), wrap(x, ScreenWidth)
	erased := f.pixels[row][col]
	f.pixels[row][col] = !erased
	return erased
}

// Count returns the number of set pixels.
func (f *Framebuffer) Count() int {
	var n int
	for y := range ScreenHeight {
		for x := range ScreenWidth {
			if f.pixels[y][x] {
				n++
			}
		}
	}
	return n
}

// String returns the display as text, one line per row with '#' for set
// and '.' for unset pixels.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight)
	for y := range ScreenHeight {
		for x := range ScreenWidth {
			if f.pixels[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
