package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestTerminal_Poll(t *testing.T) {
	term := newTerminal(log.NewTestLogger(t), nil, &bytes.Buffer{})

	term.input <- 'a'
	term.input <- 'x'
	term.input <- '5'
	events, quit := term.Poll()
	assert.False(t, quit)
	assert.Equal(t, []scheduler.KeyEvent{
		{Key: 0xA, Pressed: true},
		{Key: 0x5, Pressed: true},
	}, events)

	// key repeat keeps the key pressed without new events
	term.input <- 'a'
	events, _ = term.Poll()
	assert.Empty(t, events)

	for range holdTicks - 1 {
		events, _ = term.Poll()
		if len(events) > 0 {
			break
		}
	}
	assert.Equal(t, []scheduler.KeyEvent{{Key: 0x5, Pressed: false}}, events)

	events, _ = term.Poll()
	assert.Equal(t, []scheduler.KeyEvent{{Key: 0xA, Pressed: false}}, events)
}

func TestTerminal_Quit(t *testing.T) {
	term := newTerminal(log.NewTestLogger(t), nil, &bytes.Buffer{})

	term.input <- keyEscape
	_, quit := term.Poll()
	assert.True(t, quit)
}

func TestTerminal_ReaderClosed(t *testing.T) {
	term := newTerminal(log.NewTestLogger(t), nil, &bytes.Buffer{})
	close(term.input)

	_, quit := term.Poll()
	assert.False(t, quit)
	_, quit = term.Poll()
	assert.False(t, quit)
}

func TestTerminal_Present(t *testing.T) {
	out := &bytes.Buffer{}
	term := newTerminal(log.NewTestLogger(t), nil, out)

	var fb machine.Framebuffer
	fb.Flip(0, 0)
	fb.Flip(1, 1)
	fb.Flip(2, 0)
	fb.Flip(2, 1)
	assert.NoError(t, term.Present(&fb, machine.Halted))

	output := out.String()
	assert.True(t, strings.HasPrefix(output, escapeHome+"▀▄█ "))
	assert.True(t, strings.Contains(output, "halted"))

	lines := strings.Split(strings.TrimPrefix(output, escapeHome), "\r\n")
	assert.Len(t, lines, machine.ScreenHeight/2+2)
	assert.Equal(t, machine.ScreenWidth, len([]rune(lines[0])))
	assert.NoError(t, term.Close())
}
