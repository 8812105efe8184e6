// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading CHIP-8 program images from disk.
// Program images are raw bytes without any header.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program image from the given file.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: file %s has %d bytes, maximum is %d bytes",
			chip8.ErrProgramTooLarge, path, info.Size(), chip8.MaxProgramSize)
	}

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromReader reads a program image from the reader. At most one byte
// more than the maximum program size is read to detect oversized images.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: program exceeds the maximum of %d bytes", chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	if len(data) == 0 {
		return nil, errEmptyProgram
	}
	return data, nil
}

var errEmptyProgram = errors.New("program is empty")
