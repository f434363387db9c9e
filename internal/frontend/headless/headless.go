// Package headless implements a display and input without any host
// window, for automated runs and tests.
package headless

import (
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/scheduler"
)

// Headless is a scheduler.InputSource and scheduler.DisplaySink that
// requests to quit after a maximum number of ticks.
type Headless struct {
	maxTicks int
	polls    int

	last   machine.Framebuffer
	status machine.Status
}

// New returns a headless frontend. A maxTicks value of 0 runs until the
// program halts.
func New(maxTicks int) *Headless {
	return &Headless{
		maxTicks: maxTicks,
	}
}

// Poll never returns key events and requests to quit once the tick limit
// is reached.
func (h *Headless) Poll() ([]scheduler.KeyEvent, bool) {
	h.polls++
	return nil, h.maxTicks > 0 && h.polls > h.maxTicks
}

// Present stores a copy of the framebuffer.
func (h *Headless) Present(fb *machine.Framebuffer, status machine.Status) error {
	h.last = *fb
	h.status = status
	return nil
}

// Last returns the last presented framebuffer and machine status.
func (h *Headless) Last() (*machine.Framebuffer, machine.Status) {
	return &h.last, h.status
}
