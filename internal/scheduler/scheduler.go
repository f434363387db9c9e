// Package scheduler drives the virtual machine at the fixed tick rate and
// connects it to the input, display and audio collaborators.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

const (
	// TickRate is the number of ticks per second.
	TickRate = 60
	// TickDuration is the wall clock duration of one tick.
	TickDuration = time.Second / TickRate

	// DefaultCyclesPerTick is the number of instructions executed per tick
	// if no other value is configured.
	DefaultCyclesPerTick = 10
	// DefaultMaxCatchUpTicks limits the number of ticks that are run back to
	// back when the loop lags behind the wall clock.
	DefaultMaxCatchUpTicks = 5
)

// KeyEvent is a state change of a keypad key.
type KeyEvent struct {
	Key     machine.Key
	Pressed bool
}

// InputSource provides the key events since the last poll and whether the
// user requested to quit.
type InputSource interface {
	Poll() ([]KeyEvent, bool)
}

// ResetSource is optionally implemented by an InputSource that lets the
// user restart the loaded program.
type ResetSource interface {
	ResetRequested() bool
}

// DisplaySink presents the framebuffer once per tick.
type DisplaySink interface {
	Present(fb *machine.Framebuffer, status machine.Status) error
}

// AudioGate switches the tone on and off.
type AudioGate interface {
	SetEnabled(enabled bool)
}

// Clock abstracts the wall clock for pacing the loop.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// Options of the scheduler. Nil collaborators are replaced by
// implementations that do nothing.
type Options struct {
	CyclesPerTick   int
	MaxCatchUpTicks int

	// HoldOnHalt keeps the loop running after the program halted, so that
	// the final screen stays visible until the user quits or resets.
	HoldOnHalt bool

	Input   InputSource
	Display DisplaySink
	Audio   AudioGate
	Clock   Clock
}

// Stats contains counters of a scheduler run.
type Stats struct {
	Ticks        uint64
	Instructions uint64
	DroppedTicks uint64
	Resets       uint64
}

// Scheduler runs the fetch, decode and execute loop at the tick rate.
type Scheduler struct {
	logger  *log.Logger
	cpu     *cpu.CPU
	machine *machine.Machine

	cyclesPerTick   int
	maxCatchUpTicks int
	holdOnHalt      bool

	input   InputSource
	display DisplaySink
	audio   AudioGate
	clock   Clock

	stats Stats
}

// New returns a scheduler for the machine of the given CPU.
func New(logger *log.Logger, c *cpu.CPU, options Options) *Scheduler {
	s := &Scheduler{
		logger:          logger,
		cpu:             c,
		machine:         c.Machine(),
		cyclesPerTick:   max(options.CyclesPerTick, 1),
		maxCatchUpTicks: max(options.MaxCatchUpTicks, 1),
		holdOnHalt:      options.HoldOnHalt,
		input:           options.Input,
		display:         options.Display,
		audio:           options.Audio,
		clock:           options.Clock,
	}

	if options.CyclesPerTick == 0 {
		s.cyclesPerTick = DefaultCyclesPerTick
	}
	if options.MaxCatchUpTicks == 0 {
		s.maxCatchUpTicks = DefaultMaxCatchUpTicks
	}
	if s.input == nil {
		s.input = noInput{}
	}
	if s.display == nil {
		s.display = noDisplay{}
	}
	if s.audio == nil {
		s.audio = noAudio{}
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	return s
}

// Tick performs one tick: apply input, execute the instructions of the
// tick, decrement the timers, present the display and gate the audio.
// It returns true if the loop should end.
func (s *Scheduler) Tick() (bool, error) {
	m := s.machine

	events, quit := s.input.Poll()
	if quit {
		return true, nil
	}

	// a reset clears the keypad, keys pressed in the same poll stay held
	if resetter, ok := s.input.(ResetSource); ok && resetter.ResetRequested() {
		s.logger.Info("Resetting machine")
		m.Reset()
		s.stats.Resets++
	}

	for _, event := range events {
		if err := m.SetKey(event.Key, event.Pressed); err != nil {
			return true, fmt.Errorf("applying key event: %w", err)
		}
	}

	waiting := m.Status() == machine.WaitingForKey
	before := s.cpu.Executed()
	for range s.cyclesPerTick {
		if m.Status() != machine.Running {
			break
		}
		if err := s.cpu.Step(); err != nil {
			return true, err
		}
	}
	s.stats.Instructions += s.cpu.Executed() - before
	if !waiting && m.Status() == machine.WaitingForKey {
		s.logger.Debug("Waiting for key", log.Stringer("register", m.WaitRegister()))
	}

	m.DecrementTimers()

	if err := s.display.Present(&m.Screen, m.Status()); err != nil {
		return true, fmt.Errorf("presenting frame: %w", err)
	}
	s.audio.SetEnabled(m.SoundTimer.Active())
	s.stats.Ticks++

	return m.Status() == machine.Halted && !s.holdOnHalt, nil
}

// Run ticks at the tick rate until the program halts, the input source
// requests to quit, the context is canceled or an error occurs.
// A lagging loop runs up to the configured number of ticks back to back
// and then drops the remaining ticks.
func (s *Scheduler) Run(ctx context.Context) error {
	defer s.audio.SetEnabled(false)
	defer s.logStats()

	deadline := s.clock.Now()
	for {
		if ctx.Err() != nil {
			return nil
		}

		now := s.clock.Now()
		for ticks := 0; !now.Before(deadline) && ticks < s.maxCatchUpTicks; ticks++ {
			done, err := s.Tick()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			deadline = deadline.Add(TickDuration)
			now = s.clock.Now()
		}

		if !now.Before(deadline) {
			dropped := uint64(now.Sub(deadline)/TickDuration) + 1
			s.stats.DroppedTicks += dropped
			s.logger.Debug("Loop lagging behind, dropping ticks", log.Int("ticks", int(dropped)))
			deadline = now.Add(TickDuration)
		}

		if err := s.clock.Sleep(ctx, deadline.Sub(now)); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("waiting for next tick: %w", err)
		}
	}
}

// Stats returns the counters of the scheduler.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

func (s *Scheduler) logStats() {
	s.logger.Debug("Scheduler stopped",
		log.Int("ticks", int(s.stats.Ticks)),
		log.Int("instructions", int(s.stats.Instructions)),
		log.Int("dropped_ticks", int(s.stats.DroppedTicks)),
		log.Stringer("status", s.machine.Status()))
}
