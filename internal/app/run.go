package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrogolib/log"
)

// Run handles the complete workflow for a ROM file: it loads the ROM and
// either writes its disassembly or runs it with the selected frontend.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	PrintInfo(logger, opts, len(rom))

	if opts.Disasm {
		return disassemble(logger, opts, rom)
	}
	return emulate(ctx, logger, opts, rom)
}

func disassemble(logger *log.Logger, opts options.Program, rom []byte) (err error) {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			if closeErr := closer.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", closeErr)
			}
		}
	}()

	dis := disasm.New(logger, rom, disasm.Options{ZeroBytes: opts.ZeroBytes})
	if err := dis.Write(writer); err != nil {
		return fmt.Errorf("writing disassembly: %w", err)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// session contains the state of a single emulation run.
type session struct {
	logger    *log.Logger
	opts      options.Program
	machine   *machine.Machine
	cpu       *cpu.CPU
	audio     config.AudioBackend
	scheduler *scheduler.Scheduler
}

func emulate(ctx context.Context, logger *log.Logger, opts options.Program, rom []byte) (err error) {
	m, err := machine.New(rom)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	audio, err := config.CreateAudio(logger, opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := audio.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing audio: %w", closeErr))
		}
	}()

	s := &session{
		logger:  logger,
		opts:    opts,
		machine: m,
		cpu:     cpu.New(logger, m, config.CreateCPUOptions(opts)),
		audio:   audio,
	}

	switch opts.Frontend {
	case options.FrontendWindow:
		err = s.runWindow(ctx)
	case options.FrontendTerminal:
		err = s.runTerminal(ctx)
	case options.FrontendHeadless:
		err = s.runHeadless(ctx)
	default:
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}

	s.logResult(err)

	if opts.Screenshot != "" {
		if screenshotErr := s.saveScreenshot(); screenshotErr != nil {
			err = errors.Join(err, screenshotErr)
		}
	}
	return err
}

func (s *session) newScheduler(input scheduler.InputSource, display scheduler.DisplaySink, hold bool) *scheduler.Scheduler {
	s.scheduler = scheduler.New(s.logger, s.cpu, scheduler.Options{
		CyclesPerTick: s.opts.Speed,
		HoldOnHalt:    hold,
		Input:         input,
		Display:       display,
		Audio:         s.audio,
	})
	return s.scheduler
}

// holdOnHalt returns whether the frontend keeps running after the program
// halted. Only interactive frontends can hold, and only when requested.
func holdOnHalt(opts options.Program) bool {
	return opts.Hold && opts.Frontend != options.FrontendHeadless
}

// runWindow runs the scheduler in its own goroutine, the window has to
// own the main goroutine.
func (s *session) runWindow(ctx context.Context) error {
	win := window.New(s.logger, window.Options{
		Title:      "retrochip8 - " + filepath.Base(s.opts.Input),
		Scale:      s.opts.Scale,
		Foreground: s.opts.ForegroundColor,
		Background: s.opts.BackgroundColor,
	})
	sched := s.newScheduler(win, win, holdOnHalt(s.opts))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sched.Run(ctx)
		win.Close()
	}()

	if err := win.Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("running window: %w", err)
	}
	return <-done
}

func (s *session) runTerminal(ctx context.Context) (err error) {
	term, err := terminal.Open(s.logger)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer func() {
		err = errors.Join(err, term.Close())
	}()

	return s.newScheduler(term, term, holdOnHalt(s.opts)).Run(ctx)
}

func (s *session) runHeadless(ctx context.Context) error {
	hl := headless.New(s.opts.Ticks)
	err := s.newScheduler(hl, hl, false).Run(ctx)

	if !s.opts.Quiet {
		fb, _ := hl.Last()
		fmt.Print(fb.String())
	}
	return err
}

func (s *session) logResult(err error) {
	var execErr *cpu.ExecutionError
	if errors.As(err, &execErr) {
		s.logger.Error("Program stopped",
			log.Hex("pc", execErr.PC),
			log.Hex("opcode", execErr.Opcode),
			log.Hex("i", s.machine.I),
			log.Int("stack_depth", s.machine.Stack.Len()),
		)
	}

	if s.scheduler == nil || s.opts.Quiet {
		return
	}
	stats := s.scheduler.Stats()
	s.logger.Info("Emulation finished",
		log.Stringer("status", s.machine.Status()),
		log.Int("ticks", int(stats.Ticks)),
		log.Int("instructions", int(stats.Instructions)),
		log.Int("dropped_ticks", int(stats.DroppedTicks)),
	)
}

func (s *session) saveScreenshot() error {
	err := screenshot.Save(s.opts.Screenshot, &s.machine.Screen, screenshot.Options{
		Scale:      s.opts.Scale,
		Foreground: s.opts.ForegroundColor,
		Background: s.opts.BackgroundColor,
	})
	if err != nil {
		return fmt.Errorf("saving screenshot: %w", err)
	}
	s.logger.Info("Saved screenshot", log.String("file", s.opts.Screenshot))
	return nil
}
