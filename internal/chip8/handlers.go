package chip8

// skipNext skips the instruction following the current one if cond is true.
func (c *Chip8) skipNext(cond bool) {
	if cond {
		c.State.PC = (c.State.PC + instructionSize) & AddressMask
	}
}

// 00E0: CLS
func opClearDisplay(c *Chip8, _ Instruction) error {
	c.State.Display.Clear()
	c.State.Redraw = true
	return nil
}

// 00EE: RET
func opReturn(c *Chip8, _ Instruction) error {
	if c.State.SP == 0 {
		return ErrStackUnderflow
	}
	c.State.SP--
	c.State.PC = c.State.Stack[c.State.SP]
	return nil
}

// 1nnn: JP addr
func opJump(c *Chip8, ins Instruction) error {
	c.State.PC = ins.NNN
	return nil
}

// 2nnn: CALL addr
func opCall(c *Chip8, ins Instruction) error {
	if c.State.SP >= StackDepth {
		return ErrStackOverflow
	}
	c.State.Stack[c.State.SP] = c.State.PC
	c.State.SP++
	c.State.PC = ins.NNN
	return nil
}

// 3xnn: SE Vx, byte
func opSkipEqualImmediate(c *Chip8, ins Instruction) error {
	c.skipNext(c.State.V[ins.X] == ins.NN)
	return nil
}

// 4xnn: SNE Vx, byte
func opSkipNotEqualImmediate(c *Chip8, ins Instruction) error {
	c.skipNext(c.State.V[ins.X] != ins.NN)
	return nil
}

// 5xy0: SE Vx, Vy
func opSkipEqualRegister(c *Chip8, ins Instruction) error {
	c.skipNext(c.State.V[ins.X] == c.State.V[ins.Y])
	return nil
}

// 9xy0: SNE Vx, Vy
func opSkipNotEqualRegister(c *Chip8, ins Instruction) error {
	c.skipNext(c.State.V[ins.X] != c.State.V[ins.Y])
	return nil
}

// 6xnn: LD Vx, byte
func opLoadImmediate(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] = ins.NN
	return nil
}

// 7xnn: ADD Vx, byte
// The carry flag is not affected.
func opAddImmediate(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] += ins.NN
	return nil
}

// 8xy0: LD Vx, Vy
func opLoadRegister(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] = c.State.V[ins.Y]
	return nil
}

// 8xy1: OR Vx, Vy
func opOr(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] |= c.State.V[ins.Y]
	return nil
}

// 8xy2: AND Vx, Vy
func opAnd(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] &= c.State.V[ins.Y]
	return nil
}

// 8xy3: XOR Vx, Vy
func opXor(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] ^= c.State.V[ins.Y]
	return nil
}

// 8xy4: ADD Vx, Vy
// VF is set to 1 if the sum exceeds 8 bits.
func opAddRegister(c *Chip8, ins Instruction) error {
	sum := uint16(c.State.V[ins.X]) + uint16(c.State.V[ins.Y])
	c.State.V[ins.X] = uint8(sum)
	c.State.V[FlagRegister] = boolToFlag(sum > 0xFF)
	return nil
}

// 8xy5: SUB Vx, Vy
// VF is set to 1 if no borrow occurred, i.e. Vx >= Vy.
func opSub(c *Chip8, ins Instruction) error {
	x, y := c.State.V[ins.X], c.State.V[ins.Y]
	c.State.V[ins.X] = x - y
	c.State.V[FlagRegister] = boolToFlag(x >= y)
	return nil
}

// 8xy7: SUBN Vx, Vy
// VF is set to 1 if no borrow occurred, i.e. Vy >= Vx.
func opSubReverse(c *Chip8, ins Instruction) error {
	x, y := c.State.V[ins.X], c.State.V[ins.Y]
	c.State.V[ins.X] = y - x
	c.State.V[FlagRegister] = boolToFlag(y >= x)
	return nil
}

// 8xy6: SHR Vx
// VF receives the bit shifted out.
func opShiftRight(c *Chip8, ins Instruction) error {
	x := c.State.V[ins.X]
	c.State.V[ins.X] = x >> 1
	c.State.V[FlagRegister] = x & 0x01
	return nil
}

// 8xyE: SHL Vx
// VF receives the bit shifted out.
func opShiftLeft(c *Chip8, ins Instruction) error {
	x := c.State.V[ins.X]
	c.State.V[ins.X] = x << 1
	c.State.V[FlagRegister] = x >> 7
	return nil
}

// Annn: LD I, addr
func opLoadIndex(c *Chip8, ins Instruction) error {
	c.State.I = ins.NNN
	return nil
}

// Bnnn: JP V0, addr
func opJumpOffset(c *Chip8, ins Instruction) error {
	c.State.PC = (ins.NNN + uint16(c.State.V[0])) & AddressMask
	return nil
}

// Cxnn: RND Vx, byte
func opRandom(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] = c.random.RandomByte() & ins.NN
	return nil
}

// Dxyn: DRW Vx, Vy, nibble
// Draws an 8 pixel wide sprite of n rows read from memory at I. Pixels are
// XORed onto the display and wrap around both edges, VF is set to 1 if any
// set pixel got cleared.
func opDraw(c *Chip8, ins Instruction) error {
	originX := int(c.State.V[ins.X])
	originY := int(c.State.V[ins.Y])

	var collision bool
	for row := range int(ins.N) {
		line := c.State.ReadMemory(c.State.I + uint16(row))
		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			if c.State.Display.xor(originX+col, originY+row) {
				collision = true
			}
		}
	}

	c.State.V[FlagRegister] = boolToFlag(collision)
	c.State.Redraw = true
	return nil
}

// Ex9E: SKP Vx
func opSkipKeyPressed(c *Chip8, ins Instruction) error {
	c.skipNext(c.State.Keypad[c.State.V[ins.X]&0x0F])
	return nil
}

// ExA1: SKNP Vx
func opSkipKeyNotPressed(c *Chip8, ins Instruction) error {
	c.skipNext(!c.State.Keypad[c.State.V[ins.X]&0x0F])
	return nil
}

// Fx07: LD Vx, DT
func opLoadDelayTimer(c *Chip8, ins Instruction) error {
	c.State.V[ins.X] = c.State.DelayTimer
	return nil
}

// Fx0A: LD Vx, K
// If no key is pressed, PC is moved back to this instruction and the
// interpreter blocks until Step observes a pressed key.
func opWaitKey(c *Chip8, ins Instruction) error {
	if key, ok := c.State.pressedKey(); ok {
		c.State.V[ins.X] = key
		return nil
	}
	c.State.WaitingForKey = true
	c.State.KeyRegister = ins.X
	c.State.PC = (c.State.PC - instructionSize) & AddressMask
	return nil
}

// Fx15: LD DT, Vx
func opSetDelayTimer(c *Chip8, ins Instruction) error {
	c.State.DelayTimer = c.State.V[ins.X]
	return nil
}

// Fx18: LD ST, Vx
func opSetSoundTimer(c *Chip8, ins Instruction) error {
	c.State.SoundTimer = c.State.V[ins.X]
	return nil
}

// Fx1E: ADD I, Vx
func opAddIndex(c *Chip8, ins Instruction) error {
	c.State.I += uint16(c.State.V[ins.X])
	return nil
}

// Fx29: LD F, Vx
func opLoadGlyph(c *Chip8, ins Instruction) error {
	c.State.I = glyphAddress(c.State.V[ins.X])
	return nil
}

// Fx33: LD B, Vx
func opStoreBCD(c *Chip8, ins Instruction) error {
	value := c.State.V[ins.X]
	c.writeMemory(c.State.I, value/100)
	c.writeMemory(c.State.I+1, value/10%10)
	c.writeMemory(c.State.I+2, value%10)
	return nil
}

// Fx55: LD [I], Vx
func opStoreRegisters(c *Chip8, ins Instruction) error {
	for i := range uint16(ins.X) + 1 {
		c.writeMemory(c.State.I+i, c.State.V[i])
	}
	return nil
}

// Fx65: LD Vx, [I]
func opLoadRegisters(c *Chip8, ins Instruction) error {
	for i := range uint16(ins.X) + 1 {
		c.State.V[i] = c.State.ReadMemory(c.State.I + i)
	}
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
