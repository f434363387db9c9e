package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

const (
	startLabel  = "Start"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"
)

// processJumpDestinations names all addresses inside the ROM that are
// referenced by jumps, calls or the I register and updates the referencing
// instructions with the generated label name.
func (dis *Disasm) processJumpDestinations() {
	if len(dis.offsets) > 0 {
		dis.offsets[0].label = startLabel
	}

	for _, source := range dis.offsets {
		address, naming, ok := referencedAddress(source.instruction)
		if !ok {
			continue
		}

		destination, ok := dis.offsetAt(address)
		if !ok {
			dis.logger.Debug("Reference outside of ROM",
				log.Hex("address", source.address),
				log.Hex("target", address))
			continue
		}

		if destination.label == startLabel {
			continue
		}
		if labelPriority(naming) > labelPriority(destination.naming) {
			destination.naming = naming
			destination.label = fmt.Sprintf(naming, address)
		}
	}

	for _, source := range dis.offsets {
		address, _, ok := referencedAddress(source.instruction)
		if !ok {
			continue
		}
		if destination, ok := dis.offsetAt(address); ok {
			source.branchingTo = destination.label
		}
	}
}

// referencedAddress returns the address that an instruction references and
// the label naming to use for it.
func referencedAddress(ins instruction.Instruction) (uint16, string, bool) {
	if address, ok := instruction.BranchTarget(ins); ok {
		if _, isCall := ins.(instruction.Call); isCall {
			return address, funcNaming, true
		}
		return address, labelNaming, true
	}

	// the font is not part of the ROM
	if i, ok := ins.(instruction.LdI); ok && i.Address >= machine.ProgramStart {
		return i.Address, dataNaming, true
	}
	return 0, "", false
}

// labelPriority returns the priority of a label naming, code references
// win over data references.
func labelPriority(naming string) int {
	switch naming {
	case funcNaming:
		return 3
	case labelNaming:
		return 2
	case dataNaming:
		return 1
	default:
		return 0
	}
}
