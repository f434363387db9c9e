// Package machine contains the mutable state of a CHIP-8 virtual machine:
// memory, register file, call stack, timers, framebuffer and keypad.
//
// The state is owned by a single goroutine. Nothing in this package is
// safe for concurrent use.
package machine

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout.
//
//	0x000-0x04F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x050-0x1FF: unused, zero-initialized
//	0x200-0xFFF: program and data
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address that ROM bytes are loaded to and where
	// execution begins.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits into memory after ProgramStart.
	MaxROMSize = MemorySize - ProgramStart

	addressMask = MemorySize - 1
)

var (
	// ErrROMTooLarge is returned when a ROM does not fit into program memory.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrStackOverflow is returned when a call is made with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrInvalidKey is returned for key indexes outside of 0x0-0xF.
	ErrInvalidKey = errors.New("invalid key index")
)

// Machine is the complete state of a CHIP-8 virtual machine.
type Machine struct {
	Memory Memory
	V      Registers
	I      uint16
	PC     uint16
	Stack  Stack

	DelayTimer Timer
	SoundTimer Timer

	Screen Framebuffer
	Keys   Keypad

	status       Status
	waitRegister Register
	rom          []byte
}

// New returns a machine in its power-on state with the font and the given
// ROM loaded into memory.
func New(rom []byte) (*Machine, error) {
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	m := &Machine{
		rom: make([]byte, len(rom)),
	}
	copy(m.rom, rom)
	m.Reset()
	return m, nil
}

// Reset restores the power-on state and reloads the ROM that the machine
// was created with.
func (m *Machine) Reset() {
	m.Memory = Memory{}
	copy(m.Memory[FontStart:], font[:])
	copy(m.Memory[ProgramStart:], m.rom)

	m.V = Registers{}
	m.I = 0
	m.PC = ProgramStart
	m.Stack = Stack{}
	m.DelayTimer = 0
	m.SoundTimer = 0
	m.Screen.Clear()
	m.Keys = Keypad{}
	m.status = Running
	m.waitRegister = V0
}

// Fetch returns the big-endian instruction word at the program counter.
func (m *Machine) Fetch() uint16 {
	return m.Memory.ReadWord(m.PC)
}

// Status returns the run status of the machine.
func (m *Machine) Status() Status {
	return m.status
}

// WaitRegister returns the register that receives the next key press while
// the machine is in the WaitingForKey state.
func (m *Machine) WaitRegister() Register {
	return m.waitRegister
}

// WaitForKey suspends instruction execution until a key is pressed. The
// index of the key will be written to the given register.
func (m *Machine) WaitForKey(reg Register) {
	m.status = WaitingForKey
	m.waitRegister = reg
}

// Halt puts the machine into its terminal state.
func (m *Machine) Halt() {
	m.status = Halted
}

// SetKey updates the state of a keypad key. A transition from released to
// pressed resumes a machine that is waiting for a key.
func (m *Machine) SetKey(key Key, pressed bool) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}

	wasPressed := m.Keys[key]
	m.Keys[key] = pressed

	if m.status == WaitingForKey && pressed && !wasPressed {
		m.V.Set(m.waitRegister, uint8(key))
		m.status = Running
	}
	return nil
}

// DecrementTimers decrements the delay and sound timers by one, stopping
// at zero.
func (m *Machine) DecrementTimers() {
	m.DelayTimer.Decrement()
	m.SoundTimer.Decrement()
}
