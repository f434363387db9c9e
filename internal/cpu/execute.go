package cpu

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

const spriteWidth = 8

// Execute applies a single instruction to the machine state and returns the
// new program counter. The machine program counter itself is not modified.
//
// Returning from a subroutine with an empty call stack halts the machine,
// which is not an error.
func (c *CPU) Execute(ins instruction.Instruction) (uint16, error) {
	m := c.machine
	next := m.PC + instruction.Size
	skip := next + instruction.Size

	switch i := ins.(type) {
	case instruction.Cls:
		m.Screen.Clear()

	case instruction.Ret:
		address, ok := m.Stack.Pop()
		if !ok {
			m.Halt()
			return m.PC, nil
		}
		return address, nil

	case instruction.Jp:
		return i.Address, nil

	case instruction.Call:
		if err := m.Stack.Push(next); err != nil {
			return m.PC, err
		}
		return i.Address, nil

	case instruction.SeImm:
		if m.V.Get(i.X) == i.Value {
			return skip, nil
		}

	case instruction.SneImm:
		if m.V.Get(i.X) != i.Value {
			return skip, nil
		}

	case instruction.SeReg:
		if m.V.Get(i.X) == m.V.Get(i.Y) {
			return skip, nil
		}

	case instruction.SneReg:
		if m.V.Get(i.X) != m.V.Get(i.Y) {
			return skip, nil
		}

	case instruction.LdImm:
		m.V.Set(i.X, i.Value)

	case instruction.AddImm:
		m.V.Set(i.X, m.V.Get(i.X)+i.Value)

	case instruction.LdReg:
		m.V.Set(i.X, m.V.Get(i.Y))

	case instruction.Or:
		c.logic(i.X, m.V.Get(i.X)|m.V.Get(i.Y))

	case instruction.And:
		c.logic(i.X, m.V.Get(i.X)&m.V.Get(i.Y))

	case instruction.Xor:
		c.logic(i.X, m.V.Get(i.X)^m.V.Get(i.Y))

	case instruction.AddReg:
		sum := uint16(m.V.Get(i.X)) + uint16(m.V.Get(i.Y))
		m.V.Set(i.X, uint8(sum))
		m.V.SetFlag(sum > 0xFF)

	case instruction.Sub:
		vx, vy := m.V.Get(i.X), m.V.Get(i.Y)
		m.V.Set(i.X, vx-vy)
		m.V.SetFlag(vx >= vy)

	case instruction.Subn:
		vx, vy := m.V.Get(i.X), m.V.Get(i.Y)
		m.V.Set(i.X, vy-vx)
		m.V.SetFlag(vy >= vx)

	case instruction.Shr:
		value := c.shiftOperand(i.X, i.Y)
		m.V.Set(i.X, value>>1)
		m.V.SetFlag(value&0x01 != 0)

	case instruction.Shl:
		value := c.shiftOperand(i.X, i.Y)
		m.V.Set(i.X, value<<1)
		m.V.SetFlag(value&0x80 != 0)

	case instruction.LdI:
		m.I = i.Address

	case instruction.JpV0:
		return uint16(m.V.Get(machine.V0)) + i.Address, nil

	case instruction.Rnd:
		m.V.Set(i.X, c.random.Uint8()&i.Mask)

	case instruction.Drw:
		c.draw(i)

	case instruction.Skp:
		key, err := machine.NewKey(m.V.Get(i.X))
		if err != nil {
			return m.PC, err
		}
		if m.Keys.IsPressed(key) {
			return skip, nil
		}

	case instruction.Sknp:
		key, err := machine.NewKey(m.V.Get(i.X))
		if err != nil {
			return m.PC, err
		}
		if !m.Keys.IsPressed(key) {
			return skip, nil
		}

	case instruction.LdDelay:
		m.V.Set(i.X, uint8(m.DelayTimer))

	case instruction.WaitKey:
		m.WaitForKey(i.X)

	case instruction.SetDelay:
		m.DelayTimer = machine.Timer(m.V.Get(i.X))

	case instruction.SetSound:
		m.SoundTimer = machine.Timer(m.V.Get(i.X))

	case instruction.AddI:
		m.I += uint16(m.V.Get(i.X))

	case instruction.LdSprite:
		digit := m.V.Get(i.X)
		address, ok := machine.GlyphAddress(digit)
		if !ok {
			return m.PC, fmt.Errorf("%w: %s is $%02X", ErrInvalidGlyph, i.X, digit)
		}
		m.I = address

	case instruction.Bcd:
		value := m.V.Get(i.X)
		m.Memory.Write(m.I, value/100)
		m.Memory.Write(m.I+1, value/10%10)
		m.Memory.Write(m.I+2, value%10)

	case instruction.StoreRegs:
		for reg := machine.V0; reg <= i.X; reg++ {
			m.Memory.Write(m.I+uint16(reg), m.V.Get(reg))
		}
		c.advanceI(i.X)

	case instruction.LoadRegs:
		for reg := machine.V0; reg <= i.X; reg++ {
			m.V.Set(reg, m.Memory.Read(m.I+uint16(reg)))
		}
		c.advanceI(i.X)

	default:
		return m.PC, fmt.Errorf("%w: %T", ErrUnhandledInstruction, ins)
	}

	return next, nil
}

// draw XORs a sprite onto the screen. VF is set if any pixel was erased
// during the whole draw.
func (c *CPU) draw(i instruction.Drw) {
	m := c.machine
	originX := int(m.V.Get(i.X)) % machine.ScreenWidth
	originY := int(m.V.Get(i.Y)) % machine.ScreenHeight

	var collision bool
	for row := range int(i.Height) {
		sprite := m.Memory.Read(m.I + uint16(row))
		for col := range spriteWidth {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			if m.Screen.Flip(originX+col, originY+row) {
				collision = true
			}
		}
	}

	m.V.SetFlag(collision)
}

func (c *CPU) logic(x machine.Register, result uint8) {
	c.machine.V.Set(x, result)
	if c.quirks.LogicResetsVF {
		c.machine.V.Set(machine.VF, 0)
	}
}

func (c *CPU) shiftOperand(x, y machine.Register) uint8 {
	if c.quirks.ShiftUsesVy {
		return c.machine.V.Get(y)
	}
	return c.machine.V.Get(x)
}

func (c *CPU) advanceI(x machine.Register) {
	if c.quirks.LoadStoreIncrementsI {
		c.machine.I += uint16(x) + 1
	}
}
