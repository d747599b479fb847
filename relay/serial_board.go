package relay

import (
	"fmt"

	"go.uber.org/zap"
)

// SerialBoard implements Board for relay boards behind a serial port.
// The port is opened for every command and released right after the write.
type SerialBoard struct {
	port   string
	baud   int
	open   Opener
	logger *zap.Logger
}

// NewSerialBoard creates a new SerialBoard for the named port
func NewSerialBoard(port string, opts ...Option) *SerialBoard {
	b := &SerialBoard{
		port:   port,
		baud:   DefaultBaud,
		open:   OpenSerial,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *SerialBoard) openPort() (Port, error) {
	p, err := b.open(b.port, b.baud)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", b.port, err)
	}
	return p, nil
}

func (b *SerialBoard) Set(relay int, state byte) error {
	frame, err := NewFrame(relay, state)
	if err != nil {
		return err
	}
	return b.Send(frame)
}

func (b *SerialBoard) On(relay int) error {
	return b.Set(relay, StateOn)
}

func (b *SerialBoard) Off(relay int) error {
	return b.Set(relay, StateOff)
}

// Send writes an already encoded frame to the board
func (b *SerialBoard) Send(frame Frame) error {
	s, err := b.openPort()
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			b.logger.Warn("error closing serial port", zap.String("port", b.port), zap.Error(err))
		}
	}()

	b.logger.Debug("sending frame",
		zap.String("port", b.port),
		zap.Int("baud", b.baud),
		zap.Stringer("frame", frame))

	return sendFrame(s, frame)
}
