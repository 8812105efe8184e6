package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when raw keyboard input is requested on a
// file that is not a terminal.
var ErrNoTerminal = errors.New("input is not a terminal")

// Terminal switches a terminal into raw mode to receive single key presses.
type Terminal struct {
	fd    int
	state *term.State
}

// EnableRawMode puts the terminal of the given file into raw mode.
func EnableRawMode(file *os.File) (*Terminal, error) {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNoTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw terminal mode: %w", err)
	}
	return &Terminal{fd: fd, state: state}, nil
}

// Restore returns the terminal to the mode it had before raw mode.
func (t *Terminal) Restore() error {
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}

// ReadInput reads bytes from the reader in a separate goroutine and
// forwards them on the returned channel, which is closed once reading
// fails or the context is done.
// A goroutine blocked in a Read call only notices the canceled context
// after that call returns. For os.Stdin this is the next key press, so the
// goroutine is left behind until the process exits.
func ReadInput(ctx context.Context, reader io.Reader) <-chan byte {
	input := make(chan byte, 16)
	go func() {
		defer close(input)
		buf := make([]byte, 16)
		for {
			n, err := reader.Read(buf)
			for _, b := range buf[:n] {
				select {
				case input <- b:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return input
}
