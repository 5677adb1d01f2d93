// Package terminal puts the controlling terminal into raw mode for the
// duration of a game and restores it afterwards.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is redirected.
var ErrNotTerminal = errors.New("not a terminal")

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Session holds the terminal state saved before switching to raw mode.
// Restore must be called on every exit path; it is safe to call more than once.
type Session struct {
	in    *os.File
	out   io.Writer
	state *term.State
	once  sync.Once
	err   error
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Open switches in to raw mode (no line buffering, no echo) and hides the
// cursor on out.
func Open(in, out *os.File) (*Session, error) {
	if !IsTerminal(in) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}
	if !IsTerminal(out) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, out.Name())
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	s := &Session{in: in, out: out, state: state}
	if _, err := io.WriteString(out, hideCursor); err != nil {
		_ = s.Restore()
		return nil, fmt.Errorf("hide cursor: %w", err)
	}
	return s, nil
}

// Size returns the terminal width and height in cells.
func (s *Session) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(s.in.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return width, height, nil
}

// Restore shows the cursor and puts the terminal back the way Open found it.
func (s *Session) Restore() error {
	s.once.Do(func() {
		_, werr := io.WriteString(s.out, showCursor)
		rerr := term.Restore(int(s.in.Fd()), s.state)
		if rerr != nil {
			rerr = fmt.Errorf("restore terminal: %w", rerr)
		}
		s.err = errors.Join(rerr, werr)
	})
	return s.err
}
