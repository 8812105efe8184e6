package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded 16-bit CHIP-8 instruction with all operand fields
// extracted. Which fields are meaningful depends on the instruction family.
type Instruction struct {
	Opcode uint16

	Family uint8  // bits 12-15, selects the instruction family
	X      uint8  // bits 8-11, register index
	Y      uint8  // bits 4-7, register index
	N      uint8  // bits 0-3, 4-bit immediate
	NN     uint8  // bits 0-7, 8-bit immediate
	NNN    uint16 // bits 0-11, 12-bit address
}

// Decode extracts the operand fields of an opcode.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		Family: uint8((opcode & 0xF000) >> 12),
		X:      uint8((opcode & 0x0F00) >> 8),
		Y:      uint8((opcode & 0x00F0) >> 4),
		N:      uint8(opcode & 0x000F),
		NN:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}
}

// Name returns the mnemonic of the instruction as defined by the retrogolib
// CHIP-8 opcode table, or an empty string for an unknown pattern.
func (i Instruction) Name() string {
	for _, op := range chip8cpu.Opcodes[int(i.Family)] {
		if op.Info.Mask&i.Opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}
