// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	Speed    int    `flag:"speed" usage:"instructions executed per second" default:"700"`
	Cycles   int    `flag:"cycles" usage:"number of instructions to execute in headless mode" default:"1000"`
	Headless bool   `flag:"headless" usage:"run without terminal UI and print the final display"`
	Mute     bool   `flag:"mute" usage:"disable audio"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Seed     uint64 `flag:"seed" usage:"seed for the random number instruction (0: random)"`
}

// Program options of the interpreter application.
type Program struct {
	Parameters
	Flags
}

// Interpreter defines options to control the interpreter core.
type Interpreter struct {
	Permissive bool   // skip unknown opcodes instead of halting
	Trace      bool   // log every executed instruction at debug level
	Seed       uint64 // seed of the default random source, 0 selects a random seed
}

// CyclesPerFrame returns the number of instructions to execute per 60 Hz frame.
func (p Program) CyclesPerFrame() int {
	cycles := p.Speed / 60
	if cycles < 1 {
		return 1
	}
	return cycles
}
