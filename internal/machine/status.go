package machine

// Status is the run state of the machine.
type Status uint8

const (
	// Running executes instructions normally.
	Running Status = iota
	// WaitingForKey suspends instruction execution until a key is pressed.
	WaitingForKey
	// Halted is the terminal state, entered by returning from the top level
	// of the program.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}
