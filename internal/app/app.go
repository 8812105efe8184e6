// Package app provides the main application helper for the interpreter.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// tone is a tone output that has to be closed after use.
type tone interface {
	host.Tone
	Close()
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the input file and the run mode.
func PrintInfo(logger *log.Logger, opts options.Program, programSize int) {
	if opts.Quiet {
		return
	}

	mode := "interactive"
	if opts.Headless {
		mode = "headless"
	}
	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", programSize),
		log.Int("speed", opts.Speed),
		log.String("mode", mode),
	)
}

// Run loads the ROM and executes it until the context is canceled, the user
// quits or the interpreter stops with an error.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, interpreterOpts options.Interpreter) error {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	c := chip8.New(logger, interpreterOpts, nil)
	if err := c.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	PrintInfo(logger, opts, len(rom))

	if opts.Headless {
		return runHeadless(logger, c, opts)
	}
	return runInteractive(ctx, logger, c, opts)
}

func runHeadless(logger *log.Logger, c *chip8.Chip8, opts options.Program) error {
	runner := host.NewRunner(logger, c, host.Config{
		CyclesPerFrame: opts.CyclesPerFrame(),
		Renderer:       host.NewRenderer(os.Stdout, false),
	})
	if err := runner.RunCycles(opts.Cycles); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func runInteractive(ctx context.Context, logger *log.Logger, c *chip8.Chip8, opts options.Program) (err error) {
	terminal, err := host.EnableRawMode(os.Stdin)
	if err != nil {
		return fmt.Errorf("setting up keyboard input, use -headless without a terminal: %w", err)
	}
	defer func() {
		if restoreErr := terminal.Restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	out := createTone(logger, opts)
	defer out.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := host.NewRenderer(os.Stdout, true)
	if err := renderer.Start(); err != nil {
		return err
	}
	defer func() { _ = renderer.Stop() }()

	runner := host.NewRunner(logger, c, host.Config{
		CyclesPerFrame: opts.CyclesPerFrame(),
		Renderer:       renderer,
		Tone:           out,
		Keyboard:       host.NewKeyboard(host.DefaultKeymap(), 0),
		Input:          host.ReadInput(ctx, os.Stdin),
	})

	err = runner.Run(ctx)
	if errors.Is(err, host.ErrQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// createTone returns the speaker tone output, or a silent one if audio is
// disabled or not available.
func createTone(logger *log.Logger, opts options.Program) tone {
	if opts.Mute {
		return audio.Silent{}
	}
	beeper, err := audio.New()
	if err != nil {
		logger.Warn("Audio not available, continuing without sound", log.Err(err))
		return audio.Silent{}
	}
	return beeper
}
