package machine

const (
	// FontStart is the memory address of the glyph for digit 0.
	FontStart = 0x000
	// GlyphSize is the number of bytes, and rows, of a font glyph.
	GlyphSize = 5
	// GlyphCount is the number of glyphs in the built-in font.
	GlyphCount = 16
)

var font = [GlyphCount * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the memory address of the font glyph for a
// hexadecimal digit. The boolean is false for values above 0xF.
func GlyphAddress(digit uint8) (uint16, bool) {
	if digit >= GlyphCount {
		return 0, false
	}
	return FontStart + uint16(digit)*GlyphSize, true
}
