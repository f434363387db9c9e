package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// Write writes the listing in CHIP-8 assembly format.
func (dis *Disasm) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}

	if _, err := fmt.Fprintf(w, "; Program starts at $200 in CHIP-8 memory space\n\n"); err != nil {
		return fmt.Errorf("writing memory space comment: %w", err)
	}

	if _, err := fmt.Fprintf(w, ".org $200\n\n"); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}

	for _, offset := range dis.offsets {
		if err := writeLabel(w, offset); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
		if err := writeOffset(w, offset); err != nil {
			return fmt.Errorf("writing offset: %w", err)
		}
	}

	return nil
}

// writeLabel writes a label if present in the offset.
func writeLabel(w io.Writer, offset *offset) error {
	if offset.label != "" {
		if _, err := fmt.Fprintf(w, "%s:\n", offset.label); err != nil {
			return fmt.Errorf("writing label %s: %w", offset.label, err)
		}
	}
	return nil
}

// writeOffset writes either code or data for an offset, followed by a
// comment with the address and raw bytes.
func writeOffset(w io.Writer, offset *offset) error {
	var line string
	if offset.instruction != nil {
		line = "    " + code(offset)
	} else {
		line = "    " + data(offset.data)
	}

	if _, err := fmt.Fprintf(w, "%-32s ; %s\n", line, comment(offset)); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// code returns the assembly form of an instruction, using the label name
// for referenced addresses inside the ROM.
func code(offset *offset) string {
	if offset.branchingTo == "" {
		return offset.instruction.String()
	}

	if _, ok := offset.instruction.(instruction.LdI); ok {
		return fmt.Sprintf("%s I, %s", offset.instruction.Name(), offset.branchingTo)
	}
	return fmt.Sprintf("%s %s", offset.instruction.Name(), offset.branchingTo)
}

// data returns a .byte directive for raw data bytes.
func data(bytes []byte) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, ".byte $%02X", bytes[0])

	for _, b := range bytes[1:] {
		fmt.Fprintf(&buf, ", $%02X", b)
	}
	return buf.String()
}

func comment(offset *offset) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "$%04X:", offset.address)
	for _, b := range offset.data {
		fmt.Fprintf(&buf, " %02X", b)
	}
	return buf.String()
}
