package machine

import "fmt"

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// Key is a keypad key 0x0-0xF.
type Key uint8

// NewKey returns the key for the given value, usually read from a register.
func NewKey(value uint8) (Key, error) {
	if value >= KeyCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidKey, value)
	}
	return Key(value), nil
}

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k))
}

// Keypad holds the pressed state of all keys.
type Keypad [KeyCount]bool

// IsPressed returns whether the key is currently held down.
func (k *Keypad) IsPressed(key Key) bool {
	return k[key&0x0F]
}
