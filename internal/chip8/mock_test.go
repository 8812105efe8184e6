package chip8

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// sequenceSource is a random source returning a fixed byte sequence.
type sequenceSource struct {
	values []byte
	index  int
}

func (s *sequenceSource) RandomByte() byte {
	if len(s.values) == 0 {
		return 0
	}
	b := s.values[s.index%len(s.values)]
	s.index++
	return b
}

// newTestChip8 returns an interpreter with the given instructions loaded.
func newTestChip8(t *testing.T, program ...uint16) *Chip8 {
	t.Helper()
	return newTestChip8WithOptions(t, options.Interpreter{}, program...)
}

func newTestChip8WithOptions(t *testing.T, opts options.Interpreter, program ...uint16) *Chip8 {
	t.Helper()
	c := New(log.NewTestLogger(t), opts, &sequenceSource{})
	assert.NoError(t, c.LoadProgram(assemble(program...)))
	return c
}

// assemble converts instructions to their big endian byte representation.
func assemble(program ...uint16) []byte {
	data := make([]byte, 0, len(program)*2)
	for _, op := range program {
		data = append(data, byte(op>>8), byte(op))
	}
	return data
}

// stepN executes n instructions and fails the test on any error.
func stepN(t *testing.T, c *Chip8, n int) {
	t.Helper()
	for range n {
		assert.NoError(t, c.Step())
	}
}
