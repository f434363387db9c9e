package instruction

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

var (
	// ErrUnknownOpcode is returned for opcodes that do not match any
	// instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrMachineCodeCall is returned for 0nnn opcodes which call native
	// code of the original host computer.
	ErrMachineCodeCall = errors.New("machine code call not supported")
)

// DecodeError is returned for opcodes that can not be decoded.
type DecodeError struct {
	Opcode uint16
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding opcode $%04X: %v", e.Opcode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode returns the instruction encoded by the given opcode.
//
// The opcode is split into the nibbles a (bits 15-12), x (11-8), y (7-4)
// and n (3-0). a selects the instruction family, n or the low byte select
// the instruction within the families 0, 5, 8, 9, E and F.
func Decode(opcode uint16) (Instruction, error) {
	op := operands{opcode: opcode}
	x := machine.RegisterFromNibble(uint8(opcode >> 8))
	y := machine.RegisterFromNibble(uint8(opcode >> 4))
	n := uint8(opcode & 0x000F)
	kk := uint8(opcode & 0x00FF)
	nnn := opcode & 0x0FFF

	switch opcode >> 12 {
	case 0x0:
		return decodeSystem(op)
	case 0x1:
		return Jp{operands: op, Address: nnn}, nil
	case 0x2:
		return Call{operands: op, Address: nnn}, nil
	case 0x3:
		return SeImm{operands: op, X: x, Value: kk}, nil
	case 0x4:
		return SneImm{operands: op, X: x, Value: kk}, nil
	case 0x5:
		if n == 0 {
			return SeReg{operands: op, X: x, Y: y}, nil
		}
	case 0x6:
		return LdImm{operands: op, X: x, Value: kk}, nil
	case 0x7:
		return AddImm{operands: op, X: x, Value: kk}, nil
	case 0x8:
		return decodeALU(op, x, y, n)
	case 0x9:
		if n == 0 {
			return SneReg{operands: op, X: x, Y: y}, nil
		}
	case 0xA:
		return LdI{operands: op, Address: nnn}, nil
	case 0xB:
		return JpV0{operands: op, Address: nnn}, nil
	case 0xC:
		return Rnd{operands: op, X: x, Mask: kk}, nil
	case 0xD:
		return Drw{operands: op, X: x, Y: y, Height: n}, nil
	case 0xE:
		return decodeKey(op, x, kk)
	case 0xF:
		return decodeMisc(op, x, kk)
	}

	return nil, &DecodeError{Opcode: opcode, Err: ErrUnknownOpcode}
}

func decodeSystem(op operands) (Instruction, error) {
	switch op.opcode {
	case 0x00E0:
		return Cls{operands: op}, nil
	case 0x00EE:
		return Ret{operands: op}, nil
	default:
		return nil, &DecodeError{Opcode: op.opcode, Err: ErrMachineCodeCall}
	}
}

func decodeALU(op operands, x, y machine.Register, n uint8) (Instruction, error) {
	switch n {
	case 0x0:
		return LdReg{operands: op, X: x, Y: y}, nil
	case 0x1:
		return Or{operands: op, X: x, Y: y}, nil
	case 0x2:
		return And{operands: op, X: x, Y: y}, nil
	case 0x3:
		return Xor{operands: op, X: x, Y: y}, nil
	case 0x4:
		return AddReg{operands: op, X: x, Y: y}, nil
	case 0x5:
		return Sub{operands: op, X: x, Y: y}, nil
	case 0x6:
		return Shr{operands: op, X: x, Y: y}, nil
	case 0x7:
		return Subn{operands: op, X: x, Y: y}, nil
	case 0xE:
		return Shl{operands: op, X: x, Y: y}, nil
	default:
		return nil, &DecodeError{Opcode: op.opcode, Err: ErrUnknownOpcode}
	}
}

func decodeKey(op operands, x machine.Register, kk uint8) (Instruction, error) {
	switch kk {
	case 0x9E:
		return Skp{operands: op, X: x}, nil
	case 0xA1:
		return Sknp{operands: op, X: x}, nil
	default:
		return nil, &DecodeError{Opcode: op.opcode, Err: ErrUnknownOpcode}
	}
}

func decodeMisc(op operands, x machine.Register, kk uint8) (Instruction, error) {
	switch kk {
	case 0x07:
		return LdDelay{operands: op, X: x}, nil
	case 0x0A:
		return WaitKey{operands: op, X: x}, nil
	case 0x15:
		return SetDelay{operands: op, X: x}, nil
	case 0x18:
		return SetSound{operands: op, X: x}, nil
	case 0x1E:
		return AddI{operands: op, X: x}, nil
	case 0x29:
		return LdSprite{operands: op, X: x}, nil
	case 0x33:
		return Bcd{operands: op, X: x}, nil
	case 0x55:
		return StoreRegs{operands: op, X: x}, nil
	case 0x65:
		return LoadRegs{operands: op, X: x}, nil
	default:
		return nil, &DecodeError{Opcode: op.opcode, Err: ErrUnknownOpcode}
	}
}
