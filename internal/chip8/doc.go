// Package chip8 implements a CHIP-8 interpreter core.
//
// # CHIP-8 Architecture Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. This package holds the complete machine state and executes
// programs one instruction at a time.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-0xFFF):
//   - 0x000-0x1FF: Interpreter area, not used by programs
//   - FontStart-0x09F: Built-in hexadecimal font, 16 glyphs of 5 bytes
//   - ProgramStart-0xFFF: Program image and data area
//
// All memory accesses are masked to 12 bits, an address never faults.
//
// # Execution Model
//
// Every call to Step performs one fetch-decode-execute cycle:
//  1. Fetch the 2 byte instruction at PC and advance PC by 2
//  2. Decode the operand fields x, y, n, nn and nnn
//  3. Select the handler from the dispatch table
//  4. Execute the handler against the machine state
//
// The delay and sound timers are decremented by TickTimers, which the host calls at
// 60 Hz independently of the instruction rate.
//
// # Usage Example
//
//	c := chip8.New(logger, options.Interpreter{}, nil)
//	if err := c.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := c.Step(); err != nil {
//			return fmt.Errorf("executing instruction: %w", err)
//		}
//	}
//
// # Flag Register
//
// Register VF is overloaded as carry, borrow and collision output. Instructions that
// set it write the flag after their result, so the flag wins when VF is also the
// destination register. Subtraction sets VF to 1 when no borrow occurred.
package chip8
