package host

import (
	"bytes"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Renderer draws the display as text. Two pixel rows are combined into one
// text row using half block characters.
type Renderer struct {
	writer      io.Writer
	interactive bool
	buf         bytes.Buffer
}

// NewRenderer returns a renderer writing to the given writer. Interactive
// renderers redraw in place and use raw terminal line endings.
func NewRenderer(writer io.Writer, interactive bool) *Renderer {
	return &Renderer{
		writer:      writer,
		interactive: interactive,
	}
}

// Start prepares the terminal for in place rendering.
func (r *Renderer) Start() error {
	if !r.interactive {
		return nil
	}
	if _, err := io.WriteString(r.writer, clearScreen+hideCursor); err != nil {
		return fmt.Errorf("preparing terminal: %w", err)
	}
	return nil
}

// Stop restores the cursor of an interactive terminal.
func (r *Renderer) Stop() error {
	if !r.interactive {
		return nil
	}
	if _, err := io.WriteString(r.writer, showCursor); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// Render writes one frame of the display.
func (r *Renderer) Render(display *chip8.Display) error {
	lineEnd := "\n"
	r.buf.Reset()
	if r.interactive {
		r.buf.WriteString(cursorHome)
		lineEnd = "\r\n"
	}

	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			r.buf.WriteRune(halfBlock(display[y][x], display[y+1][x]))
		}
		r.buf.WriteString(lineEnd)
	}

	if _, err := r.writer.Write(r.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
