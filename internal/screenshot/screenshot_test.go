package screenshot

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestEncode(t *testing.T) {
	var fb machine.Framebuffer
	fb.Flip(63, 31)

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	bg := color.RGBA{A: 0xFF}

	var buf bytes.Buffer
	assert.NoError(t, Encode(&buf, &fb, Options{Scale: 3, Foreground: fg, Background: bg}))

	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 192, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())

	assert.Equal(t, color.RGBAModel.Convert(fg), color.RGBAModel.Convert(img.At(191, 95)))
	assert.Equal(t, color.RGBAModel.Convert(fg), color.RGBAModel.Convert(img.At(189, 93)))
	assert.Equal(t, color.RGBAModel.Convert(bg), color.RGBAModel.Convert(img.At(188, 92)))
}

func TestSave(t *testing.T) {
	var fb machine.Framebuffer
	path := filepath.Join(t.TempDir(), "screen.png")

	assert.NoError(t, Save(path, &fb, Options{}))

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	config, err := png.DecodeConfig(file)
	assert.NoError(t, err)
	assert.Equal(t, machine.ScreenWidth, config.Width)
	assert.Equal(t, machine.ScreenHeight, config.Height)

	assert.Error(t, Save(filepath.Join(t.TempDir(), "missing", "screen.png"), &fb, Options{}))
}
