package machine

import (
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStack(t *testing.T) {
	var s Stack

	_, ok := s.Pop()
	assert.False(t, ok)

	for i := range StackSize {
		assert.NoError(t, s.Push(uint16(0x200+2*i)))
	}
	assert.Equal(t, StackSize, s.Len())

	err := s.Push(0x300)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StackSize, s.Len())

	for i := StackSize - 1; i >= 0; i-- {
		addr, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, uint16(0x200+2*i), addr)
	}
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestRegisters(t *testing.T) {
	var r Registers
	r.Set(VA, 0x7F)
	assert.Equal(t, uint8(0x7F), r.Get(VA))
	assert.Equal(t, "VA", VA.String())
	assert.Equal(t, VC, RegisterFromNibble(0xFC))

	r.SetFlag(true)
	assert.Equal(t, uint8(1), r.Get(VF))
	r.SetFlag(false)
	assert.Equal(t, uint8(0), r.Get(VF))
}

func TestNewKey(t *testing.T) {
	key, err := NewKey(0xF)
	assert.NoError(t, err)
	assert.Equal(t, Key(0xF), key)
	assert.Equal(t, "F", key.String())

	_, err = NewKey(0x10)
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestGlyphAddress(t *testing.T) {
	for digit := range uint8(GlyphCount) {
		addr, ok := GlyphAddress(digit)
		assert.True(t, ok)
		assert.Equal(t, uint16(digit)*GlyphSize, addr)
	}

	_, ok := GlyphAddress(GlyphCount)
	assert.False(t, ok)
}

func TestFramebuffer(t *testing.T) {
	var f Framebuffer

	assert.False(t, f.Flip(3, 4))
	assert.True(t, f.Pixel(3, 4))
	assert.Equal(t, 1, f.Count())

	assert.True(t, f.Flip(3, 4))
	assert.False(t, f.Pixel(3, 4))
	assert.Equal(t, 0, f.Count())
}

func TestFramebuffer_Wraps(t *testing.T) {
	var f Framebuffer

	f.Flip(ScreenWidth+2, ScreenHeight+1)
	assert.True(t, f.Pixel(2, 1))
	assert.True(t, f.Pixel(-ScreenWidth+2, -ScreenHeight+1))

	f.Clear()
	assert.Equal(t, 0, f.Count())
}

func TestFramebuffer_String(t *testing.T) {
	var f Framebuffer
	f.Flip(0, 0)
	f.Flip(63, 31)

	lines := strings.Split(strings.TrimSuffix(f.String(), "\n"), "\n")
	assert.Len(t, lines, ScreenHeight)
	assert.Equal(t, "#"+strings.Repeat(".", ScreenWidth-1), lines[0])
	assert.Equal(t, strings.Repeat(".", ScreenWidth-1)+"#", lines[ScreenHeight-1])
}

func TestTimer(t *testing.T) {
	timer := Timer(1)
	assert.True(t, timer.Active())
	timer.Decrement()
	assert.False(t, timer.Active())
	timer.Decrement()
	assert.Equal(t, Timer(0), timer)
}
