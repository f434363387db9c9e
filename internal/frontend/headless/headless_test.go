package headless

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestHeadless_TickLimit(t *testing.T) {
	h := New(2)

	_, quit := h.Poll()
	assert.False(t, quit)
	_, quit = h.Poll()
	assert.False(t, quit)
	_, quit = h.Poll()
	assert.True(t, quit)
}

func TestHeadless_Unlimited(t *testing.T) {
	h := New(0)
	for range 1000 {
		events, quit := h.Poll()
		assert.Len(t, events, 0)
		assert.False(t, quit)
	}
}

func TestHeadless_Present(t *testing.T) {
	h := New(0)

	var fb machine.Framebuffer
	fb.Flip(3, 3)
	assert.NoError(t, h.Present(&fb, machine.Halted))
	fb.Flip(4, 4)

	last, status := h.Last()
	assert.Equal(t, machine.Halted, status)
	assert.Equal(t, 1, last.Count())
}
