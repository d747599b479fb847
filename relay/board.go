package relay

import (
	"io"

	"go.uber.org/zap"
)

// Board defines the operations supported by a relay board
type Board interface {
	// Set writes the raw state byte for a relay
	Set(relay int, state byte) error
	// On closes a relay
	On(relay int) error
	// Off opens a relay
	Off(relay int) error
}

// Port is an open connection to the board
type Port interface {
	io.WriteCloser
}

// Opener opens the named port at the given baud rate
type Opener func(name string, baud int) (Port, error)

// Option configures a SerialBoard
type Option func(*SerialBoard)

// WithOpener replaces the port opener, mostly for tests
func WithOpener(open Opener) Option {
	return func(b *SerialBoard) {
		b.open = open
	}
}

// WithLogger sets the logger used for transport events
func WithLogger(logger *zap.Logger) Option {
	return func(b *SerialBoard) {
		b.logger = logger
	}
}
