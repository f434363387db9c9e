package machine

import "fmt"

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// Register is the index of a general purpose register V0-VF.
type Register uint8

// General purpose registers. VF doubles as the flag register for carry,
// borrow, shifted out bits and sprite collisions.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// RegisterFromNibble returns the register addressed by the low 4 bits of
// the given value.
func RegisterFromNibble(nibble uint8) Register {
	return Register(nibble & 0x0F)
}

func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}

// Registers is the general purpose register file.
type Registers [RegisterCount]uint8

// Get returns the value of a register.
func (r *Registers) Get(reg Register) uint8 {
	return r[reg&0x0F]
}

// Set sets the value of a register.
func (r *Registers) Set(reg Register, value uint8) {
	r[reg&0x0F] = value
}

// SetFlag sets VF to 1 if the condition is true, otherwise to 0.
func (r *Registers) SetFlag(condition bool) {
	if condition {
		r[VF] = 1
	} else {
		r[VF] = 0
	}
}
