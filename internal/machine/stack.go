package machine

import "fmt"

// StackSize is the capacity of the call stack.
const StackSize = 16

// Stack is the fixed capacity stack of subroutine return addresses.
type Stack struct {
	entries [StackSize]uint16
	sp      int
}

// Push stores a return address. It fails when the stack is full.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackSize {
		return fmt.Errorf("%w: pushing $%03X", ErrStackOverflow, address)
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recent return address. The boolean is
// false if the stack was empty.
func (s *Stack) Pop() (uint16, bool) {
	if s.sp == 0 {
		return 0, false
	}
	s.sp--
	return s.entries[s.sp], true
}

// Len returns the number of stored return addresses.
func (s *Stack) Len() int {
	return s.sp
}
