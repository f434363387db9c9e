// Package instruction decodes 16 bit CHIP-8 opcodes into typed instruction
// values.
//
// Every executable CHIP-8 instruction is represented by its own struct type
// holding the decoded operands. All types implement the sealed Instruction
// interface, so a type switch over Instruction values covers the complete
// instruction set.
package instruction

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded CHIP-8 instruction.
type Instruction interface {
	// Opcode returns the instruction word that the instruction was decoded from.
	Opcode() uint16
	// Name returns the instruction mnemonic.
	Name() string
	// String returns the instruction in assembler notation.
	String() string

	instruction()
}

type operands struct {
	opcode uint16
}

func (o operands) Opcode() uint16 { return o.opcode }

func (operands) instruction() {}

// Cls clears the display (00E0).
type Cls struct{ operands }

// Ret returns from a subroutine (00EE).
type Ret struct{ operands }

// Jp jumps to an address (1nnn).
type Jp struct {
	operands
	Address uint16
}

// Call calls a subroutine (2nnn).
type Call struct {
	operands
	Address uint16
}

// SeImm skips the next instruction if Vx equals a byte (3xkk).
type SeImm struct {
	operands
	X     machine.Register
	Value uint8
}

// SneImm skips the next instruction if Vx does not equal a byte (4xkk).
type SneImm struct {
	operands
	X     machine.Register
	Value uint8
}

// SeReg skips the next instruction if Vx equals Vy (5xy0).
type SeReg struct {
	operands
	X, Y machine.Register
}

// LdImm sets Vx to a byte (6xkk).
type LdImm struct {
	operands
	X     machine.Register
	Value uint8
}

// AddImm adds a byte to Vx without setting a carry flag (7xkk).
type AddImm struct {
	operands
	X     machine.Register
	Value uint8
}

// LdReg sets Vx to Vy (8xy0).
type LdReg struct {
	operands
	X, Y machine.Register
}

// Or sets Vx to Vx OR Vy (8xy1).
type Or struct {
	operands
	X, Y machine.Register
}

// And sets Vx to Vx AND Vy (8xy2).
type And struct {
	operands
	X, Y machine.Register
}

// Xor sets Vx to Vx XOR Vy (8xy3).
type Xor struct {
	operands
	X, Y machine.Register
}

// AddReg adds Vy to Vx, VF is the carry (8xy4).
type AddReg struct {
	operands
	X, Y machine.Register
}

// Sub subtracts Vy from Vx, VF is set if no borrow occurred (8xy5).
type Sub struct {
	operands
	X, Y machine.Register
}

// Shr shifts Vx right by one, VF is the shifted out bit (8xy6).
type Shr struct {
	operands
	X, Y machine.Register
}

// Subn sets Vx to Vy minus Vx, VF is set if no borrow occurred (8xy7).
type Subn struct {
	operands
	X, Y machine.Register
}

// Shl shifts Vx left by one, VF is the shifted out bit (8xyE).
type Shl struct {
	operands
	X, Y machine.Register
}

// SneReg skips the next instruction if Vx does not equal Vy (9xy0).
type SneReg struct {
	operands
	X, Y machine.Register
}

// LdI sets I to an address (Annn).
type LdI struct {
	operands
	Address uint16
}

// JpV0 jumps to an address plus V0 (Bnnn).
type JpV0 struct {
	operands
	Address uint16
}

// Rnd sets Vx to a random byte masked with a byte (Cxkk).
type Rnd struct {
	operands
	X    machine.Register
	Mask uint8
}

// Drw draws a sprite of Height rows from memory at I to the position
// Vx, Vy (Dxyn).
type Drw struct {
	operands
	X, Y   machine.Register
	Height uint8
}

// Skp skips the next instruction if the key in Vx is pressed (Ex9E).
type Skp struct {
	operands
	X machine.Register
}

// Sknp skips the next instruction if the key in Vx is not pressed (ExA1).
type Sknp struct {
	operands
	X machine.Register
}

// LdDelay sets Vx to the delay timer (Fx07).
type LdDelay struct {
	operands
	X machine.Register
}

// WaitKey suspends execution until a key is pressed and stores the key
// in Vx (Fx0A).
type WaitKey struct {
	operands
	X machine.Register
}

// SetDelay sets the delay timer to Vx (Fx15).
type SetDelay struct {
	operands
	X machine.Register
}

// SetSound sets the sound timer to Vx (Fx18).
type SetSound struct {
	operands
	X machine.Register
}

// AddI adds Vx to I (Fx1E).
type AddI struct {
	operands
	X machine.Register
}

// LdSprite sets I to the font glyph of the digit in Vx (Fx29).
type LdSprite struct {
	operands
	X machine.Register
}

// Bcd stores the decimal digits of Vx at I, I+1 and I+2 (Fx33).
type Bcd struct {
	operands
	X machine.Register
}

// StoreRegs stores V0 to Vx in memory starting at I (Fx55).
type StoreRegs struct {
	operands
	X machine.Register
}

// LoadRegs loads V0 to Vx from memory starting at I (Fx65).
type LoadRegs struct {
	operands
	X machine.Register
}

func (Cls) Name() string       { return chip8.ClsName }
func (Ret) Name() string       { return chip8.RetName }
func (Jp) Name() string        { return chip8.JpName }
func (Call) Name() string      { return chip8.CallName }
func (SeImm) Name() string     { return chip8.SeName }
func (SneImm) Name() string    { return chip8.SneName }
func (SeReg) Name() string     { return chip8.SeName }
func (LdImm) Name() string     { return chip8.LdName }
func (AddImm) Name() string    { return chip8.AddName }
func (LdReg) Name() string     { return chip8.LdName }
func (Or) Name() string        { return chip8.OrName }
func (And) Name() string       { return chip8.AndName }
func (Xor) Name() string       { return chip8.XorName }
func (AddReg) Name() string    { return chip8.AddName }
func (Sub) Name() string       { return chip8.SubName }
func (Shr) Name() string       { return chip8.ShrName }
func (Subn) Name() string      { return chip8.SubnName }
func (Shl) Name() string       { return chip8.ShlName }
func (SneReg) Name() string    { return chip8.SneName }
func (LdI) Name() string       { return chip8.LdName }
func (JpV0) Name() string      { return chip8.JpName }
func (Rnd) Name() string       { return chip8.RndName }
func (Drw) Name() string       { return chip8.DrwName }
func (Skp) Name() string       { return chip8.SkpName }
func (Sknp) Name() string      { return chip8.SknpName }
func (LdDelay) Name() string   { return chip8.LdName }
func (WaitKey) Name() string   { return chip8.LdName }
func (SetDelay) Name() string  { return chip8.LdName }
func (SetSound) Name() string  { return chip8.LdName }
func (AddI) Name() string      { return chip8.AddName }
func (LdSprite) Name() string  { return chip8.LdName }
func (Bcd) Name() string       { return chip8.LdName }
func (StoreRegs) Name() string { return chip8.LdName }
func (LoadRegs) Name() string  { return chip8.LdName }

func (i Cls) String() string    { return i.Name() }
func (i Ret) String() string    { return i.Name() }
func (i Jp) String() string     { return fmt.Sprintf("%s $%03X", i.Name(), i.Address) }
func (i Call) String() string   { return fmt.Sprintf("%s $%03X", i.Name(), i.Address) }
func (i SeImm) String() string  { return fmt.Sprintf("%s %s, $%02X", i.Name(), i.X, i.Value) }
func (i SneImm) String() string { return fmt.Sprintf("%s %s, $%02X", i.Name(), i.X, i.Value) }
func (i SeReg) String() string  { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i LdImm) String() string  { return fmt.Sprintf("%s %s, $%02X", i.Name(), i.X, i.Value) }
func (i AddImm) String() string { return fmt.Sprintf("%s %s, $%02X", i.Name(), i.X, i.Value) }
func (i LdReg) String() string  { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i Or) String() string     { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i And) String() string    { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i Xor) String() string    { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i AddReg) String() string { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i Sub) String() string    { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i Shr) String() string    { return fmt.Sprintf("%s %s", i.Name(), i.X) }
func (i Subn) String() string   { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i Shl) String() string    { return fmt.Sprintf("%s %s", i.Name(), i.X) }
func (i SneReg) String() string { return fmt.Sprintf("%s %s, %s", i.Name(), i.X, i.Y) }
func (i LdI) String() string    { return fmt.Sprintf("%s I, $%03X", i.Name(), i.Address) }
func (i JpV0) String() string   { return fmt.Sprintf("%s V0, $%03X", i.Name(), i.Address) }
func (i Rnd) String() string    { return fmt.Sprintf("%s %s, $%02X", i.Name(), i.X, i.Mask) }
func (i Drw) String() string {
	return fmt.Sprintf("%s %s, %s, $%X", i.Name(), i.X, i.Y, i.Height)
}
func (i Skp) String() string       { return fmt.Sprintf("%s %s", i.Name(), i.X) }
func (i Sknp) String() string      { return fmt.Sprintf("%s %s", i.Name(), i.X) }
func (i LdDelay) String() string   { return fmt.Sprintf("%s %s, DT", i.Name(), i.X) }
func (i WaitKey) String() string   { return fmt.Sprintf("%s %s, K", i.Name(), i.X) }
func (i SetDelay) String() string  { return fmt.Sprintf("%s DT, %s", i.Name(), i.X) }
func (i SetSound) String() string  { return fmt.Sprintf("%s ST, %s", i.Name(), i.X) }
func (i AddI) String() string      { return fmt.Sprintf("%s I, %s", i.Name(), i.X) }
func (i LdSprite) String() string  { return fmt.Sprintf("%s F, %s", i.Name(), i.X) }
func (i Bcd) String() string       { return fmt.Sprintf("%s B, %s", i.Name(), i.X) }
func (i StoreRegs) String() string { return fmt.Sprintf("%s [I], %s", i.Name(), i.X) }
func (i LoadRegs) String() string  { return fmt.Sprintf("%s %s, [I]", i.Name(), i.X) }

// BranchTarget returns the destination address of a jump or call with an
// absolute address.
func BranchTarget(ins Instruction) (uint16, bool) {
	switch i := ins.(type) {
	case Jp:
		return i.Address, true
	case Call:
		return i.Address, true
	default:
		return 0, false
	}
}
