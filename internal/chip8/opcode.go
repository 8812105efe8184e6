package chip8

// handler executes one decoded instruction against the interpreter.
type handler func(c *Chip8, ins Instruction) error

// discriminator selects the variant key of an ambiguous instruction family.
type discriminator func(ins Instruction) uint8

// family is one entry of the first nibble lookup. Families that are fully
// identified by their first nibble only set handler, all others set a
// discriminator and the variants it selects between.
type family struct {
	handler       handler
	discriminator discriminator
	variants      map[uint8]handler
}

// dispatchTable maps decoded instructions to their handlers.
// It is built once by newDispatchTable and not modified afterwards.
type dispatchTable struct {
	families [16]family
}

func byNN(ins Instruction) uint8 { return ins.NN }
func byN(ins Instruction) uint8  { return ins.N }

func newDispatchTable() *dispatchTable {
	t := &dispatchTable{}
	t.families[0x0] = family{
		discriminator: byNN,
		variants: map[uint8]handler{
			0xE0: opClearDisplay,
			0xEE: opReturn,
		},
	}
	t.families[0x1] = family{handler: opJump}
	t.families[0x2] = family{handler: opCall}
	t.families[0x3] = family{handler: opSkipEqualImmediate}
	t.families[0x4] = family{handler: opSkipNotEqualImmediate}
	t.families[0x5] = family{handler: opSkipEqualRegister}
	t.families[0x6] = family{handler: opLoadImmediate}
	t.families[0x7] = family{handler: opAddImmediate}
	t.families[0x8] = family{
		discriminator: byN,
		variants: map[uint8]handler{
			0x0: opLoadRegister,
			0x1: opOr,
			0x2: opAnd,
			0x3: opXor,
			0x4: opAddRegister,
			0x5: opSub,
			0x6: opShiftRight,
			0x7: opSubReverse,
			0xE: opShiftLeft,
		},
	}
	t.families[0x9] = family{handler: opSkipNotEqualRegister}
	t.families[0xA] = family{handler: opLoadIndex}
	t.families[0xB] = family{handler: opJumpOffset}
	t.families[0xC] = family{handler: opRandom}
	t.families[0xD] = family{handler: opDraw}
	t.families[0xE] = family{
		discriminator: byNN,
		variants: map[uint8]handler{
			0x9E: opSkipKeyPressed,
			0xA1: opSkipKeyNotPressed,
		},
	}
	t.families[0xF] = family{
		discriminator: byNN,
		variants: map[uint8]handler{
			0x07: opLoadDelayTimer,
			0x0A: opWaitKey,
			0x15: opSetDelayTimer,
			0x18: opSetSoundTimer,
			0x1E: opAddIndex,
			0x29: opLoadGlyph,
			0x33: opStoreBCD,
			0x55: opStoreRegisters,
			0x65: opLoadRegisters,
		},
	}
	return t
}

// lookup returns the handler for the instruction.
func (t *dispatchTable) lookup(ins Instruction) (handler, bool) {
	f := t.families[ins.Family&0x0F]
	if f.discriminator == nil {
		return f.handler, f.handler != nil
	}
	h, ok := f.variants[f.discriminator(ins)]
	return h, ok
}
