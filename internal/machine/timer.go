package machine

// Timer is an 8 bit countdown timer that is decremented once per scheduler
// tick.
type Timer uint8

// Decrement counts the timer down by one. A timer at zero stays at zero.
func (t *Timer) Decrement() {
	if *t > 0 {
		*t--
	}
}

// Active returns whether the timer has not yet reached zero.
func (t Timer) Active() bool {
	return t > 0
}
