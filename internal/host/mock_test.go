package host

import (
	"github.com/retroenv/retrochip8/internal/chip8"
)

// fakeMachine records the calls of the runner.
type fakeMachine struct {
	steps   int
	ticks   int
	stepErr error
	failAt  int // step number that fails, 0 disables failing

	keys    [chip8.KeyCount]bool
	sound   bool
	redraw  bool
	display chip8.Display
}

func (m *fakeMachine) Step() error {
	m.steps++
	if m.failAt > 0 && m.steps >= m.failAt {
		return m.stepErr
	}
	return nil
}

func (m *fakeMachine) TickTimers() {
	m.ticks++
}

func (m *fakeMachine) SetKey(key uint8, pressed bool) {
	m.keys[key&0x0F] = pressed
}

func (m *fakeMachine) SoundActive() bool {
	return m.sound
}

func (m *fakeMachine) Display() *chip8.Display {
	return &m.display
}

func (m *fakeMachine) ConsumeRedraw() bool {
	redraw := m.redraw
	m.redraw = false
	return redraw
}

// fakeTone records the last tone state.
type fakeTone struct {
	active  bool
	changes int
}

func (t *fakeTone) SetActive(active bool) {
	t.active = active
	t.changes++
}
