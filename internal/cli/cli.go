// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns program and interpreter options
func ParseFlags() (options.Program, options.Interpreter, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	var interpreterOpts options.Interpreter
	readInterpreterOptionFlags(flags, &interpreterOpts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Interpreter{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Interpreter{}, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, options.Interpreter{}, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	return opts, interpreterOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks option values for valid ranges
func validateOptions(opts options.Program) error {
	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d: must be a positive number of instructions per second", opts.Speed)
	}
	if opts.Headless && opts.Cycles <= 0 {
		return fmt.Errorf("invalid cycles %d: headless mode needs a positive instruction count", opts.Cycles)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.IntVar(&opts.Speed, "speed", 700, "instructions executed per second")
	flags.IntVar(&opts.Cycles, "cycles", 1000, "number of instructions to execute in headless mode")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal UI and print the final display")
	flags.BoolVar(&opts.Mute, "mute", false, "disable audio")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 uses a random seed")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readInterpreterOptionFlags(flags *flag.FlagSet, opts *options.Interpreter) {
	flags.BoolVar(&opts.Permissive, "permissive", false, "skip unknown opcodes instead of halting the interpreter")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
}
