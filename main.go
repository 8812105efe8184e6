// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, interpreterOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	app.PrintBanner(logger, opts, version, commit, date)

	interpreterOpts = config.InterpreterOptions(logger, opts, interpreterOpts)

	if err := app.Run(ctx, logger, opts, interpreterOpts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Stopped")
			return
		}
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}
