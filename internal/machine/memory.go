package machine

// Memory is the flat 4 KiB address space. Addresses wrap around at the end
// of memory, only the low 12 bits of an address are significant.
type Memory [MemorySize]byte

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m[address&addressMask]
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) {
	m[address&addressMask] = value
}

// ReadWord returns the big-endian 16 bit word starting at the given address.
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address))<<8 | uint16(m.Read(address+1))
}
