package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/machine"
)

// keyMap maps the host keys 0-9, A-F and the numpad digits to the keypad
// key with the same hexadecimal value.
func keyMap() map[ebiten.Key]machine.Key {
	keys := map[ebiten.Key]machine.Key{
		ebiten.KeyA: 0xA,
		ebiten.KeyB: 0xB,
		ebiten.KeyC: 0xC,
		ebiten.KeyD: 0xD,
		ebiten.KeyE: 0xE,
		ebiten.KeyF: 0xF,
	}

	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	numpad := []ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
	for i := range digits {
		keys[digits[i]] = machine.Key(i)
		keys[numpad[i]] = machine.Key(i)
	}
	return keys
}
