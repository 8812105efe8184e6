package chip8

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// CHIP-8 machine constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, font glyphs at 0x050-0x09F
//	0x200-0xFFF: Program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory.
	MemorySize = 4096
	// AddressMask limits addresses to the 12-bit address space.
	AddressMask = 0x0FFF

	// ProgramStart is the load address and entry point of programs.
	ProgramStart = 0x200
	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the first font glyph.
	FontStart = 0x050
	// FontGlyphSize is the number of bytes per font glyph.
	FontGlyphSize = 5
	// FontSize is the size of the complete font set.
	FontSize = 16 * FontGlyphSize

	RegisterCount = 16
	FlagRegister  = 0xF // VF, carry/borrow/collision flag
	StackDepth    = 16
	KeyCount      = 16

	DisplayWidth  = 64
	DisplayHeight = 32

	// TimerFrequency is the rate in Hz at which TickTimers has to be called.
	TimerFrequency = 60

	instructionSize = 2
)

// Chip8 is a CHIP-8 interpreter. It owns the machine state and executes
// the loaded program one instruction at a time.
type Chip8 struct {
	State State

	logger  *log.Logger
	options options.Interpreter
	random  RandomSource
	table   *dispatchTable

	loaded bool
	halted error // fatal error that stopped the execution

	reportedUnknown set.Set[uint16] // addresses of logged unknown opcodes
}

// New returns a new initialized interpreter. If rng is nil, a random source
// seeded by the options is used.
func New(logger *log.Logger, opts options.Interpreter, rng RandomSource) *Chip8 {
	if rng == nil {
		rng = NewRandomSource(opts.Seed)
	}
	c := &Chip8{
		logger:  logger,
		options: opts,
		random:  rng,
		table:   newDispatchTable(),
	}
	c.Initialize()
	return c
}

// Initialize resets the machine state to its power-on values and discards
// any loaded program.
func (c *Chip8) Initialize() {
	c.State.Reset()
	c.loaded = false
	c.halted = nil
	c.reportedUnknown = set.New[uint16]()
}

// LoadProgram copies the program image into memory at ProgramStart,
// replacing any previously loaded program. If the program does not fit,
// the memory is not modified and no program is loaded afterwards.
func (c *Chip8) LoadProgram(data []byte) error {
	c.loaded = false
	if len(data) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes", ErrProgramTooLarge, len(data), MaxProgramSize)
	}

	clear(c.State.Memory[ProgramStart:])
	copy(c.State.Memory[ProgramStart:], data)
	c.loaded = true
	c.logger.Debug("Program loaded",
		log.Int("size", len(data)),
		log.Hex("address", uint16(ProgramStart)))
	return nil
}

// Step executes a single instruction. While the interpreter waits for a key
// press, no instruction is fetched.
func (c *Chip8) Step() error {
	if c.halted != nil {
		return fmt.Errorf("%w: %w", ErrHalted, c.halted)
	}
	if !c.loaded {
		return ErrNoProgram
	}
	if c.State.WaitingForKey {
		c.resolveKeyWait()
		return nil
	}

	address := c.State.PC & AddressMask
	opcode := uint16(c.State.ReadMemory(address))<<8 | uint16(c.State.ReadMemory(address+1))
	c.State.PC = (address + instructionSize) & AddressMask

	ins := Decode(opcode)
	if c.options.Trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", address),
			log.Hex("opcode", opcode),
			log.String("name", ins.Name()))
	}

	h, ok := c.table.lookup(ins)
	if !ok {
		return c.unknownOpcode(ins, address)
	}

	if err := h(c, ins); err != nil {
		c.halted = fmt.Errorf("executing opcode $%04X at address $%03X: %w", opcode, address, err)
		return c.halted
	}
	return nil
}

// unknownOpcode handles an instruction without handler. In permissive mode
// the instruction is skipped, otherwise the interpreter halts.
func (c *Chip8) unknownOpcode(ins Instruction, address uint16) error {
	err := &DecodeError{Opcode: ins.Opcode, Address: address}
	if !c.options.Permissive {
		c.halted = err
		return err
	}

	if !c.reportedUnknown.Contains(address) {
		c.reportedUnknown.Add(address)
		c.logger.Warn("Skipping unknown opcode",
			log.Hex("opcode", ins.Opcode),
			log.Hex("address", address))
	}
	return nil
}

// resolveKeyWait completes a pending key wait instruction once a key is pressed.
func (c *Chip8) resolveKeyWait() {
	key, ok := c.State.pressedKey()
	if !ok {
		return
	}
	c.State.V[c.State.KeyRegister&0x0F] = key
	c.State.WaitingForKey = false
	c.State.PC = (c.State.PC + instructionSize) & AddressMask
}

// TickTimers decrements the delay and sound timers by one toward zero.
// It has to be called at TimerFrequency, independent of the instruction rate.
func (c *Chip8) TickTimers() {
	if c.State.DelayTimer > 0 {
		c.State.DelayTimer--
	}
	if c.State.SoundTimer > 0 {
		c.State.SoundTimer--
	}
}

// SetKey sets the pressed state of a keypad key 0x0-0xF.
func (c *Chip8) SetKey(key uint8, pressed bool) {
	c.State.Keypad[key&0x0F] = pressed
}

// SoundActive returns whether the sound timer is running.
func (c *Chip8) SoundActive() bool {
	return c.State.SoundActive()
}

// Display returns the frame buffer.
func (c *Chip8) Display() *Display {
	return &c.State.Display
}

// ConsumeRedraw returns whether the display changed since the last call.
func (c *Chip8) ConsumeRedraw() bool {
	redraw := c.State.Redraw
	c.State.Redraw = false
	return redraw
}

// Halted returns the fatal error that stopped the interpreter, if any.
func (c *Chip8) Halted() error {
	return c.halted
}

// writeMemory stores a byte and reports dropped writes to the font area.
func (c *Chip8) writeMemory(address uint16, value byte) {
	if !c.State.WriteMemory(address, value) {
		c.logger.Warn("Ignoring write to font memory",
			log.Hex("address", address&AddressMask),
			log.Hex("pc", c.State.PC))
	}
}
