package host

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	keyEscape   = 0x1b
	keyCtrlC    = 0x03
	defaultHold = 6 // frames a key stays pressed after a key press event
)

// Keymap maps input characters to keypad keys.
type Keymap map[rune]uint8

// DefaultKeymap returns the conventional QWERTY layout of the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
func DefaultKeymap() Keymap {
	return Keymap{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
		'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
		'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
		'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
	}
}

// Key returns the keypad key for the input character.
func (k Keymap) Key(r rune) (uint8, bool) {
	key, ok := k[unicode.ToLower(r)]
	return key, ok
}

// KeySetter receives the keypad state.
type KeySetter interface {
	SetKey(key uint8, pressed bool)
}

// Keyboard converts key press events into keypad state. Terminals only
// report presses, so every press holds the key down for a number of frames.
type Keyboard struct {
	keymap    Keymap
	hold      int
	remaining [chip8.KeyCount]int
}

// NewKeyboard returns a keyboard using the given keymap. A hold of 0 or less
// selects the default hold duration.
func NewKeyboard(keymap Keymap, hold int) *Keyboard {
	if hold <= 0 {
		hold = defaultHold
	}
	return &Keyboard{
		keymap: keymap,
		hold:   hold,
	}
}

// Press handles an input byte and returns true if it requests to quit.
func (k *Keyboard) Press(b byte) bool {
	if b == keyEscape || b == keyCtrlC {
		return true
	}
	if key, ok := k.keymap.Key(rune(b)); ok {
		k.remaining[key] = k.hold
	}
	return false
}

// Apply writes the current keypad state for one frame to the setter and
// advances the hold counters.
func (k *Keyboard) Apply(setter KeySetter) {
	for key, remaining := range k.remaining {
		setter.SetKey(uint8(key), remaining > 0)
		if remaining > 0 {
			k.remaining[key]--
		}
	}
}
