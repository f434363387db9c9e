// Package terminal implements the display and input of the emulator on a
// text terminal in raw mode.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the standard input is not a terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

const (
	// holdTicks is the number of ticks that a key stays pressed after its
	// character was read. Terminals do not report key releases, held keys
	// are refreshed by the key repeat of the terminal.
	holdTicks = 6

	keyEscape = 0x1b
	keyCtrlC  = 0x03

	// two display rows are rendered per text line
	minColumns = machine.ScreenWidth
	minLines   = machine.ScreenHeight/2 + 1

	escapeHome       = "\x1b[H"
	escapeClear      = "\x1b[2J"
	escapeHideCursor = "\x1b[?25l"
	escapeShowCursor = "\x1b[?25h"
)

// Terminal is a scheduler.InputSource and scheduler.DisplaySink.
type Terminal struct {
	logger *log.Logger
	out    *bufio.Writer
	input  chan byte

	fd    int
	state *term.State

	held [machine.KeyCount]int
	quit bool
}

// Open switches the terminal of the process to raw mode. Close restores it.
func Open(logger *log.Logger) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (width < minColumns || height < minLines) {
		logger.Warn("Terminal is too small for the display",
			log.Int("columns", width),
			log.Int("lines", height),
			log.Int("required_columns", minColumns),
			log.Int("required_lines", minLines))
	}

	t := newTerminal(logger, os.Stdin, os.Stdout)
	t.fd = fd
	t.state = state

	_, _ = t.out.WriteString(escapeHideCursor + escapeClear)
	return t, t.out.Flush()
}

func newTerminal(logger *log.Logger, in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		logger: logger,
		out:    bufio.NewWriter(out),
		input:  make(chan byte, 64),
	}
	if in != nil {
		go t.read(in)
	}
	return t
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	_, _ = t.out.WriteString(escapeShowCursor + "\r\n")
	_ = t.out.Flush()

	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// read forwards the input bytes until the reader fails.
func (t *Terminal) read(in io.Reader) {
	defer close(t.input)

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			t.input <- b
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the key events since the last call. Escape and Ctrl-C
// request to quit.
func (t *Terminal) Poll() ([]scheduler.KeyEvent, bool) {
	var events []scheduler.KeyEvent

	for key := range t.held {
		if t.held[key] == 0 {
			continue
		}
		t.held[key]--
		if t.held[key] == 0 {
			events = append(events, scheduler.KeyEvent{Key: machine.Key(key), Pressed: false})
		}
	}

	for {
		select {
		case b, ok := <-t.input:
			if !ok {
				t.input = nil
				return events, t.quit
			}
			events = t.handleByte(b, events)
		default:
			return events, t.quit
		}
	}
}

func (t *Terminal) handleByte(b byte, events []scheduler.KeyEvent) []scheduler.KeyEvent {
	if b == keyEscape || b == keyCtrlC {
		t.quit = true
		return events
	}

	key, ok := frontend.KeyFromRune(rune(b))
	if !ok {
		return events
	}
	if t.held[key] == 0 {
		events = append(events, scheduler.KeyEvent{Key: key, Pressed: true})
	}
	t.held[key] = holdTicks
	return events
}

// Present draws the framebuffer at the top left corner of the terminal.
func (t *Terminal) Present(fb *machine.Framebuffer, status machine.Status) error {
	if _, err := t.out.WriteString(escapeHome + render(fb, status)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// render returns the display using half block characters, followed by a
// status line.
func render(fb *machine.Framebuffer, status machine.Status) string {
	var sb strings.Builder
	for y := 0; y < machine.ScreenHeight; y += 2 {
		for x := range machine.ScreenWidth {
			top, bottom := fb.Pixel(x, y), fb.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	fmt.Fprintf(&sb, "%-20s\r\n", status)
	return sb.String()
}
