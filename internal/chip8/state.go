package chip8

// Display is the 64x32 monochrome frame buffer, stored row-major.
type Display [DisplayHeight][DisplayWidth]bool

// Clear turns off all pixels.
func (d *Display) Clear() {
	*d = Display{}
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	return d[wrap(y, DisplayHeight)][wrap(x, DisplayWidth)]
}

// xor flips the pixel at the given coordinates and returns true if
// the pixel was turned off.
func (d *Display) xor(x, y int) bool {
	row, col := wrap(y, DisplayHeight), wrap(x, DisplayWidth)
	was := d[row][col]
	d[row][col] = !was
	return was
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}

// State contains the complete architectural state of the machine.
type State struct {
	V      [RegisterCount]uint8 // general purpose registers V0-VF
	Memory [MemorySize]byte

	I  uint16 // index register
	PC uint16 // address of the next instruction to fetch

	Stack [StackDepth]uint16 // return addresses
	SP    uint8              // number of used stack slots

	DelayTimer uint8
	SoundTimer uint8

	Keypad  [KeyCount]bool // written by the host only
	Display Display

	Redraw bool // display changed since the host last rendered it

	WaitingForKey bool  // execution is blocked by a key wait instruction
	KeyRegister   uint8 // register receiving the awaited key
}

// Reset puts the state into the power-on configuration: everything zeroed,
// font loaded and PC at the program start address.
func (s *State) Reset() {
	*s = State{}
	copy(s.Memory[FontStart:], fontSet[:])
	s.PC = ProgramStart
}

// ReadMemory returns the byte at the given address masked to 12 bits.
func (s *State) ReadMemory(address uint16) byte {
	return s.Memory[address&AddressMask]
}

// WriteMemory stores a byte at the given address masked to 12 bits.
// Writes into the font area are dropped, false is returned in that case.
func (s *State) WriteMemory(address uint16, value byte) bool {
	address &= AddressMask
	if isFontAddress(address) {
		return false
	}
	s.Memory[address] = value
	return true
}

// SoundActive returns whether a tone should currently be played.
func (s *State) SoundActive() bool {
	return s.SoundTimer > 0
}

// pressedKey returns the lowest pressed key.
func (s *State) pressedKey() (uint8, bool) {
	for key, pressed := range s.Keypad {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}

func isFontAddress(address uint16) bool {
	return address >= FontStart && address < FontStart+FontSize
}
