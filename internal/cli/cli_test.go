package cli

import (
	"errors"
	"image/color"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parse(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parse(t, "game.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, options.FrontendWindow, opts.Frontend)
	assert.Equal(t, 10, opts.Speed)
	assert.Equal(t, 10, opts.Scale)
	assert.Equal(t, color.RGBA{R: 0x33, G: 0xFF, B: 0x66, A: 0xFF}, opts.ForegroundColor)
	assert.Equal(t, color.RGBA{A: 0xFF}, opts.BackgroundColor)
	assert.False(t, opts.ShiftUsesVy)
	assert.False(t, opts.LoadStoreIncrementsI)
	assert.False(t, opts.LogicResetsVF)
	assert.False(t, opts.Debug)
	assert.False(t, opts.Hold)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "headless frontend",
			args: []string{"-frontend", "HEADLESS", "-ticks", "120", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, options.FrontendHeadless, opts.Frontend)
				assert.Equal(t, 120, opts.Ticks)
			},
		},
		{
			name: "quirks",
			args: []string{"-quirk-shift", "-quirk-loadstore", "-quirk-vfreset", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.ShiftUsesVy)
				assert.True(t, opts.LoadStoreIncrementsI)
				assert.True(t, opts.LogicResetsVF)
			},
		},
		{
			name: "hold after halt",
			args: []string{"-hold", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Hold)
			},
		},
		{
			name: "trace implies debug",
			args: []string{"-trace", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Trace)
				assert.True(t, opts.Debug)
			},
		},
		{
			name: "files and colors",
			args: []string{"-wav", "out.wav", "-screenshot", "out.png", "-fg", "FFFFFF", "-bg", "#102030", "-seed", "42", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "out.wav", opts.Wav)
				assert.Equal(t, "out.png", opts.Screenshot)
				assert.Equal(t, uint64(42), opts.Seed)
				assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, opts.ForegroundColor)
				assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, opts.BackgroundColor)
			},
		},
		{
			name: "disassembly",
			args: []string{"-disasm", "-z", "-o", "game.asm", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Disasm)
				assert.True(t, opts.ZeroBytes)
				assert.Equal(t, "game.asm", opts.Output)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parse(t, tt.args...)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing ROM", nil},
		{"extra ROM", []string{"a.ch8", "b.ch8"}},
		{"flag after ROM", []string{"a.ch8", "-mute"}},
		{"unknown flag", []string{"-unknown", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlags_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"frontend", []string{"-frontend", "sdl", "a.ch8"}},
		{"speed", []string{"-speed", "0", "a.ch8"}},
		{"scale", []string{"-scale", "-1", "a.ch8"}},
		{"ticks", []string{"-ticks", "-5", "a.ch8"}},
		{"color", []string{"-fg", "green", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.False(t, errors.As(err, &usageErr))
		})
	}

	_, err := parse(t, "-bg", "#12", "a.ch8")
	assert.True(t, errors.Is(err, frontend.ErrInvalidColor))
}

func TestParseFlags_UsageShown(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		shown bool
	}{
		{"missing ROM", nil, false},
		{"extra ROM", []string{"a.ch8", "b.ch8"}, false},
		{"help", []string{"-h"}, true},
		{"unknown flag", []string{"-unknown", "a.ch8"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.Equal(t, tt.shown, usageErr.shown)
		})
	}
}
