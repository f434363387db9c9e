// Package disasm implements a linear disassembler for CHIP-8 ROMs.
package disasm

import (
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Options of the disassembler.
type Options struct {
	// ZeroBytes keeps trailing zero bytes of the ROM in the output.
	ZeroBytes bool
}

// offset is a single line of the listing, either an instruction or data.
type offset struct {
	address     uint16
	data        []byte
	instruction instruction.Instruction
	label       string
	naming      string
	branchingTo string
}

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options Options
	offsets []*offset
}

// New creates a disassembler for the given ROM. Every 2 byte word is
// decoded in order, words that do not decode are kept as data.
func New(logger *log.Logger, rom []byte, options Options) *Disasm {
	dis := &Disasm{
		logger:  logger,
		options: options,
	}

	end := len(rom)
	if !options.ZeroBytes {
		end = trimmedEnd(rom)
	}

	for i := 0; i < end; i += instruction.Size {
		address := uint16(machine.ProgramStart + i)
		if i+1 >= end {
			dis.offsets = append(dis.offsets, &offset{address: address, data: rom[i : i+1]})
			break
		}

		data := rom[i : i+instruction.Size]
		ins, err := instruction.Decode(uint16(data[0])<<8 | uint16(data[1]))
		if err != nil {
			dis.offsets = append(dis.offsets, &offset{address: address, data: data})
			continue
		}
		dis.offsets = append(dis.offsets, &offset{address: address, data: data, instruction: ins})
	}

	dis.processJumpDestinations()
	return dis
}

// trimmedEnd returns the ROM length without trailing zero bytes, rounded up
// to a full instruction word.
func trimmedEnd(rom []byte) int {
	end := len(rom)
	for end > 0 && rom[end-1] == 0 {
		end--
	}
	if end%instruction.Size != 0 && end < len(rom) {
		end++
	}
	return end
}

// offsetAt returns the listing line for the given address.
func (dis *Disasm) offsetAt(address uint16) (*offset, bool) {
	if address < machine.ProgramStart || address%instruction.Size != 0 {
		return nil, false
	}
	index := int(address-machine.ProgramStart) / instruction.Size
	if index >= len(dis.offsets) {
		return nil, false
	}
	return dis.offsets[index], true
}
