package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateCPUOptions(t *testing.T) {
	opts := options.Program{
		Flags:  options.Flags{Seed: 7, Trace: true},
		Quirks: options.Quirks{ShiftUsesVy: true, LogicResetsVF: true},
	}

	cpuOptions := CreateCPUOptions(opts)
	assert.True(t, cpuOptions.Quirks.ShiftUsesVy)
	assert.False(t, cpuOptions.Quirks.LoadStoreIncrementsI)
	assert.True(t, cpuOptions.Quirks.LogicResetsVF)
	assert.True(t, cpuOptions.Trace)

	// same seed, same sequence
	other := CreateCPUOptions(opts)
	for range 16 {
		assert.Equal(t, cpuOptions.Random.Uint8(), other.Random.Uint8())
	}
}

func TestCreateAudio_Headless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	opts := options.Program{
		Parameters: options.Parameters{Wav: path},
		Flags:      options.Flags{Frontend: options.FrontendHeadless},
	}

	backend, err := CreateAudio(log.NewTestLogger(t), opts)
	assert.NoError(t, err)
	backend.SetEnabled(true)
	assert.NoError(t, backend.Close())

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 44)
}

func TestCreateAudio_Muted(t *testing.T) {
	opts := options.Program{Flags: options.Flags{Frontend: options.FrontendWindow, Mute: true}}

	backend, err := CreateAudio(log.NewTestLogger(t), opts)
	assert.NoError(t, err)
	backend.SetEnabled(true)
	assert.NoError(t, backend.Close())
}

func TestCreateAudio_InvalidPath(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Wav: filepath.Join(t.TempDir(), "missing", "out.wav")},
		Flags:      options.Flags{Frontend: options.FrontendHeadless},
	}

	_, err := CreateAudio(log.NewTestLogger(t), opts)
	assert.Error(t, err)
}
