// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateCPUOptions creates the interpreter options from the program options.
func CreateCPUOptions(opts options.Program) cpu.Options {
	return cpu.Options{
		Quirks: cpu.Quirks{
			ShiftUsesVy:          opts.ShiftUsesVy,
			LoadStoreIncrementsI: opts.LoadStoreIncrementsI,
			LogicResetsVF:        opts.LogicResetsVF,
		},
		Random: cpu.NewRandomSource(opts.Seed),
		Trace:  opts.Trace,
	}
}

// AudioBackend is an audio gate that holds resources until it is closed.
type AudioBackend interface {
	audio.Gate
	io.Closer
}

type audioOutputs struct {
	audio.Multi
	closers []io.Closer
}

func (a *audioOutputs) Close() error {
	var err error
	for _, closer := range a.closers {
		err = errors.Join(err, closer.Close())
	}
	return err
}

// CreateAudio creates the audio gates for the program options. A beeper
// that can not be opened is logged and skipped, the emulator then runs
// without sound.
func CreateAudio(logger *log.Logger, opts options.Program) (AudioBackend, error) {
	outputs := &audioOutputs{}

	if !opts.Mute && opts.Frontend != options.FrontendHeadless {
		beeper, err := audio.NewBeeper(logger)
		if err != nil {
			logger.Warn("Audio output is not available", log.Err(err))
		} else {
			outputs.Multi = append(outputs.Multi, beeper)
			outputs.closers = append(outputs.closers, beeper)
		}
	}

	if opts.Wav != "" {
		recorder, err := audio.CreateRecorder(opts.Wav)
		if err != nil {
			_ = outputs.Close()
			return nil, fmt.Errorf("creating audio recorder: %w", err)
		}
		outputs.Multi = append(outputs.Multi, recorder)
		outputs.closers = append(outputs.closers, recorder)
	}

	if len(outputs.Multi) == 0 {
		outputs.Multi = audio.Multi{audio.Mute{}}
	}
	return outputs, nil
}
