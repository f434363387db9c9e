package audio

// Mute is a Gate that discards all state changes.
type Mute struct{}

// SetEnabled does nothing.
func (Mute) SetEnabled(bool) {}

// Multi fans out state changes to multiple gates.
type Multi []Gate

// SetEnabled forwards the state to all gates.
func (m Multi) SetEnabled(enabled bool) {
	for _, gate := range m {
		gate.SetEnabled(enabled)
	}
}
