package input

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"snake-term/game/types"
)

// ErrInputClosed is returned by Capture.Run when the input stream ends.
var ErrInputClosed = errors.New("input closed")

// Sink receives classified intents.
type Sink interface {
	Push(types.Intent)
}

// Capture reads key presses and forwards them to a Sink. It never touches
// simulation state.
type Capture struct {
	r      io.Reader
	keymap Keymap
	sink   Sink
	logger *slog.Logger
}

func NewCapture(r io.Reader, keymap Keymap, sink Sink, logger *slog.Logger) *Capture {
	return &Capture{
		r:      r,
		keymap: keymap,
		sink:   sink,
		logger: logger,
	}
}

// Run reads until the reader fails. It is meant to run in its own goroutine
// for the lifetime of the process; nothing waits for it to return.
func (c *Capture) Run() error {
	buf := make([]byte, 64)
	var pending []byte

	for {
		n, err := c.r.Read(buf)
		if n > 0 {
			chunk := append(pending, buf[:n]...)
			var intents []types.Intent
			intents, pending = c.keymap.Decode(chunk)
			pending = append([]byte(nil), pending...)
			for _, intent := range intents {
				c.sink.Push(intent)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			c.logger.Error("reading input failed", "error", err)
			return fmt.Errorf("read input: %w", err)
		}
	}
}
