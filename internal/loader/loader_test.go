package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x12, 0x34, 0x56, 0x78}
		tmpFile := createTempFile(t, data)

		loader := New()
		rom, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, data, rom)
	})

	t.Run("load ROM of maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		loader := New()
		rom, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, chip8.MaxProgramSize)
	})

	t.Run("error on oversized ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		loader := New()
		_, err := loader.Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		_, err := loader.Load("/nonexistent/file.ch8")
		assert.Error(t, err)
	})

	t.Run("error on directory", func(t *testing.T) {
		loader := New()
		_, err := loader.Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New()
		_, err := loader.Load(tmpFile)
		assert.True(t, errors.Is(err, errEmptyProgram))
	})
}

func TestLoadFromReader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"small program", []byte{0x00, 0xE0}, nil},
		{"maximum size", make([]byte, chip8.MaxProgramSize), nil},
		{"oversized", make([]byte, chip8.MaxProgramSize+100), chip8.ErrProgramTooLarge},
		{"empty", []byte{}, errEmptyProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := New()
			rom, err := loader.LoadFromReader(bytes.NewReader(tt.data))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.data, rom)
		})
	}
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
