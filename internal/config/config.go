// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// InterpreterOptions returns the interpreter options to use for the program
// options. Tracing is only effective with debug logging enabled.
func InterpreterOptions(logger *log.Logger, opts options.Program, interpreterOpts options.Interpreter) options.Interpreter {
	if interpreterOpts.Trace && !opts.Debug {
		logger.Warn("Instruction tracing requires debug logging, ignoring -trace")
		interpreterOpts.Trace = false
	}
	interpreterOpts.Seed = opts.Seed
	return interpreterOpts
}
