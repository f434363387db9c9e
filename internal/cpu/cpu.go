// Package cpu executes decoded CHIP-8 instructions against the machine state.
package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrInvalidGlyph is returned when a font glyph is requested for a value
	// that is not a hexadecimal digit.
	ErrInvalidGlyph = errors.New("invalid font glyph")
	// ErrUnhandledInstruction is returned for instruction types that the
	// executor does not know.
	ErrUnhandledInstruction = errors.New("unhandled instruction")
)

// ExecutionError is returned for fatal conditions while executing the
// instruction at PC.
type ExecutionError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing opcode $%04X at $%03X: %v", e.Opcode, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Options of the CPU.
type Options struct {
	Quirks Quirks
	// Random provides the values for the rnd instruction. If nil, a
	// randomly seeded source is used.
	Random RandomSource
	// Trace logs every executed instruction on debug level.
	Trace bool
}

// CPU executes instructions of a machine.
type CPU struct {
	logger  *log.Logger
	machine *machine.Machine
	quirks  Quirks
	random  RandomSource
	trace   bool

	executed uint64
}

// New returns a CPU that operates on the given machine.
func New(logger *log.Logger, m *machine.Machine, options Options) *CPU {
	random := options.Random
	if random == nil {
		random = NewRandomSource(0)
	}

	return &CPU{
		logger:  logger,
		machine: m,
		quirks:  options.Quirks,
		random:  random,
		trace:   options.Trace,
	}
}

// Step fetches, decodes and executes the instruction at the program
// counter. It does nothing if the machine is waiting for a key or halted.
func (c *CPU) Step() error {
	m := c.machine
	if m.Status() != machine.Running {
		return nil
	}

	pc := m.PC
	opcode := m.Fetch()
	ins, err := instruction.Decode(opcode)
	if err != nil {
		return &ExecutionError{PC: pc, Opcode: opcode, Err: err}
	}

	if c.trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("instruction", ins.String()))
	}

	next, err := c.Execute(ins)
	if err != nil {
		return &ExecutionError{PC: pc, Opcode: opcode, Err: err}
	}

	m.PC = next
	c.executed++
	return nil
}

// Executed returns the number of instructions that were executed by Step.
func (c *CPU) Executed() uint64 {
	return c.executed
}

// Machine returns the machine that the CPU operates on.
func (c *CPU) Machine() *machine.Machine {
	return c.machine
}
