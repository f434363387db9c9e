package cpu

// Quirks selects between historically different behaviors of some
// instructions. The zero value is the default behavior of this emulator.
type Quirks struct {
	// ShiftUsesVy makes 8xy6 and 8xyE shift Vy into Vx, as the COSMAC VIP
	// interpreter did. By default Vx is shifted in place.
	ShiftUsesVy bool

	// LoadStoreIncrementsI makes Fx55 and Fx65 leave I pointing after the
	// last transferred register. By default I is unchanged.
	LoadStoreIncrementsI bool

	// LogicResetsVF makes 8xy1, 8xy2 and 8xy3 clear VF.
	LogicResetsVF bool
}
