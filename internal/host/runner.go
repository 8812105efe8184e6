package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// ErrQuit is returned by Run when the user requested to quit.
var ErrQuit = errors.New("quit requested")

// Machine is the interpreter interface used by the runner.
type Machine interface {
	KeySetter

	Step() error
	TickTimers()
	SoundActive() bool
	Display() *chip8.Display
	ConsumeRedraw() bool
}

// Tone plays a tone while active.
type Tone interface {
	SetActive(active bool)
}

// Config defines the collaborators and pacing of a runner.
type Config struct {
	CyclesPerFrame int // instructions executed per 60 Hz frame

	Renderer *Renderer
	Tone     Tone        // optional
	Keyboard *Keyboard   // optional, required for input
	Input    <-chan byte // optional, raw input bytes for the keyboard
}

// Runner drives a machine in real time or for a fixed number of instructions.
type Runner struct {
	logger  *log.Logger
	machine Machine
	config  Config

	frameDuration time.Duration
	frames        uint64
}

// NewRunner returns a new runner for the machine.
func NewRunner(logger *log.Logger, machine Machine, config Config) *Runner {
	if config.CyclesPerFrame < 1 {
		config.CyclesPerFrame = 1
	}
	return &Runner{
		logger:        logger,
		machine:       machine,
		config:        config,
		frameDuration: time.Second / chip8.TimerFrequency,
	}
}

// Run executes frames at 60 Hz until the context is done, the user quits or
// the machine returns an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.frameDuration)
	defer ticker.Stop()
	defer r.setTone(false)

	input := r.config.Input
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case b, ok := <-input:
			if !ok {
				input = nil // input closed, keep running without keyboard
				continue
			}
			if r.config.Keyboard != nil && r.config.Keyboard.Press(b) {
				return ErrQuit
			}

		case <-ticker.C:
			if err := r.frame(); err != nil {
				return err
			}
		}
	}
}

// RunCycles executes the given number of instructions without real time
// pacing. The timers are ticked once per frame worth of instructions.
// The final display is rendered afterwards.
func (r *Runner) RunCycles(cycles int) error {
	for i := range cycles {
		if err := r.machine.Step(); err != nil {
			return fmt.Errorf("executing cycle %d: %w", i, err)
		}
		if (i+1)%r.config.CyclesPerFrame == 0 {
			r.machine.TickTimers()
			r.frames++
		}
	}

	r.logger.Debug("Execution finished",
		log.Int("cycles", cycles),
		log.Int("frames", int(r.frames)))

	if r.config.Renderer == nil {
		return nil
	}
	return r.config.Renderer.Render(r.machine.Display())
}

// frame executes one 60 Hz frame.
func (r *Runner) frame() error {
	if r.config.Keyboard != nil {
		r.config.Keyboard.Apply(r.machine)
	}

	for range r.config.CyclesPerFrame {
		if err := r.machine.Step(); err != nil {
			return err
		}
	}
	r.machine.TickTimers()
	r.frames++
	r.setTone(r.machine.SoundActive())

	if r.config.Renderer != nil && r.machine.ConsumeRedraw() {
		if err := r.config.Renderer.Render(r.machine.Display()); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
	}
	return nil
}

func (r *Runner) setTone(active bool) {
	if r.config.Tone != nil {
		r.config.Tone.SetActive(active)
	}
}
