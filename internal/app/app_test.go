package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRun_Headless(t *testing.T) {
	rom := []byte{
		0x60, 0x05, // LD V0, $05
		0xF0, 0x29, // LD F, V0
		0xD1, 0x15, // DRW V1, V1, 5
		0x12, 0x06, // JP $206
	}
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, rom)},
		Flags:      options.Flags{Speed: 600, Cycles: 100, Headless: true, Quiet: true},
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts, options.Interpreter{})
	assert.NoError(t, err)
}

func TestRun_HeadlessHalts(t *testing.T) {
	rom := []byte{0x00, 0xEE} // RET without call
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, rom)},
		Flags:      options.Flags{Speed: 600, Cycles: 10, Headless: true, Quiet: true},
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts, options.Interpreter{})
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
}

func TestRun_HeadlessPermissive(t *testing.T) {
	rom := []byte{
		0xF0, 0xFF, // unknown
		0x12, 0x00, // JP $200
	}
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, rom)},
		Flags:      options.Flags{Speed: 600, Cycles: 10, Headless: true, Quiet: true},
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts, options.Interpreter{})
	assert.True(t, errors.Is(err, chip8.ErrUnknownOpcode))

	err = Run(context.Background(), log.NewTestLogger(t), opts, options.Interpreter{Permissive: true})
	assert.NoError(t, err)
}

func TestRun_MissingFile(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: "/nonexistent/rom.ch8"},
		Flags:      options.Flags{Speed: 600, Cycles: 10, Headless: true},
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts, options.Interpreter{})
	assert.Error(t, err)
}

func TestRun_OversizedROM(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, make([]byte, chip8.MaxProgramSize+1))},
		Flags:      options.Flags{Speed: 600, Cycles: 10, Headless: true},
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts, options.Interpreter{})
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}

func TestCreateTone_Mute(t *testing.T) {
	out := createTone(log.NewTestLogger(t), options.Program{Flags: options.Flags{Mute: true}})
	_, ok := out.(interface{ SetActive(bool) })
	assert.True(t, ok)
	out.Close()
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
