package scheduler

import "github.com/retroenv/retrochip8/internal/machine"

type noInput struct{}

func (noInput) Poll() ([]KeyEvent, bool) { return nil, false }

type noDisplay struct{}

func (noDisplay) Present(*machine.Framebuffer, machine.Status) error { return nil }

type noAudio struct{}

func (noAudio) SetEnabled(bool) {}
