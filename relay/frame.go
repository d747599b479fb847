package relay

import (
	"errors"
	"fmt"
)

const (
	// FrameSize is the length of every command sent to the board
	FrameSize = 3

	// MaxRelay is the highest relay number whose index still fits in a byte
	MaxRelay = 256
)

// ErrRelayNumber is returned when a relay number cannot be encoded
var ErrRelayNumber = errors.New("relay number out of range")

// Frame is a single command: header, zero-based relay index, state.
type Frame [FrameSize]byte

// NewFrame encodes a command for the 1-based relay number. The state byte
// is forwarded as is; the board decides what to do with values other
// than StateOff and StateOn.
func NewFrame(relay int, state byte) (Frame, error) {
	if relay < 1 || relay > MaxRelay {
		return Frame{}, fmt.Errorf("%w: %d (want 1-%d)", ErrRelayNumber, relay, MaxRelay)
	}
	return Frame{HeaderByte, byte(relay - 1), state}, nil
}

// Bytes returns the frame as written on the wire
func (f Frame) Bytes() []byte {
	return f[:]
}

// Relay returns the 1-based relay number
func (f Frame) Relay() int {
	return int(f[1]) + 1
}

// State returns the requested state byte
func (f Frame) State() byte {
	return f[2]
}

func (f Frame) String() string {
	return fmt.Sprintf("% x", f[:])
}
