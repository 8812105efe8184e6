package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramTooLarge is returned when a program does not fit into the
	// memory area starting at ProgramStart.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrNoProgram is returned when stepping an interpreter without a loaded program.
	ErrNoProgram = errors.New("no program loaded")
	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when returning with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrUnknownOpcode is returned for instruction patterns without a handler.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrHalted is returned when stepping an interpreter that stopped after a fatal error.
	ErrHalted = errors.New("interpreter halted")
)

// DecodeError describes an instruction that could not be dispatched.
type DecodeError struct {
	Opcode  uint16 // instruction bits
	Address uint16 // address the instruction was fetched from
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%04X at address $%03X", e.Opcode, e.Address)
}

// Unwrap allows errors.Is matching against ErrUnknownOpcode.
func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}
