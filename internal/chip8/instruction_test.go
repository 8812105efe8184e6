package chip8

import (
	"fmt"
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   Instruction
	}{
		{
			name:   "load immediate",
			opcode: 0x6A12,
			want:   Instruction{Opcode: 0x6A12, Family: 0x6, X: 0xA, Y: 0x1, N: 0x2, NN: 0x12, NNN: 0xA12},
		},
		{
			name:   "draw",
			opcode: 0xD125,
			want:   Instruction{Opcode: 0xD125, Family: 0xD, X: 0x1, Y: 0x2, N: 0x5, NN: 0x25, NNN: 0x125},
		},
		{
			name:   "all bits set",
			opcode: 0xFFFF,
			want:   Instruction{Opcode: 0xFFFF, Family: 0xF, X: 0xF, Y: 0xF, N: 0xF, NN: 0xFF, NNN: 0xFFF},
		},
		{
			name:   "zero",
			opcode: 0x0000,
			want:   Instruction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.opcode))
		})
	}
}

func TestDecodeAllOpcodes(t *testing.T) {
	for op := range 0x10000 {
		opcode := uint16(op)
		ins := Decode(opcode)

		got := uint16(ins.Family)<<12 | uint16(ins.X)<<8 | uint16(ins.Y)<<4 | uint16(ins.N)
		if got != opcode {
			t.Fatalf("decoding $%04X: fields reassemble to $%04X", opcode, got)
		}
		if uint16(ins.NN) != opcode&0x00FF || ins.NNN != opcode&0x0FFF {
			t.Fatalf("decoding $%04X: nn=$%02X nnn=$%03X", opcode, ins.NN, ins.NNN)
		}
	}
}

func TestInstruction_Name(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   string
	}{
		{0x00E0, chip8cpu.Cls.Name},
		{0x00EE, chip8cpu.Ret.Name},
		{0x1234, chip8cpu.Jp.Name},
		{0x2456, chip8cpu.Call.Name},
		{0x3A12, chip8cpu.Se.Name},
		{0x4A12, chip8cpu.Sne.Name},
		{0x6A12, chip8cpu.Ld.Name},
		{0x7A12, chip8cpu.Add.Name},
		{0x8121, chip8cpu.Or.Name},
		{0x8122, chip8cpu.And.Name},
		{0x8123, chip8cpu.Xor.Name},
		{0x8125, chip8cpu.Sub.Name},
		{0x8126, chip8cpu.Shr.Name},
		{0x8127, chip8cpu.Subn.Name},
		{0x812E, chip8cpu.Shl.Name},
		{0xC1FF, chip8cpu.Rnd.Name},
		{0xD125, chip8cpu.Drw.Name},
		{0xE19E, chip8cpu.Skp.Name},
		{0xE1A1, chip8cpu.Sknp.Name},
		{0x8128, ""},
		{0xF1FF, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("$%04X", tt.opcode), func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.opcode).Name())
		})
	}
}
