package relay

import (
	"fmt"
	"io"
)

// sendFrame writes the whole frame in a single call
func sendFrame(port io.Writer, frame Frame) error {
	n, err := port.Write(frame.Bytes())
	if err != nil {
		return fmt.Errorf("failed to send frame %s: %w", frame, err)
	}
	if n != FrameSize {
		return fmt.Errorf("failed to send frame %s: wrote %d of %d bytes: %w", frame, n, FrameSize, io.ErrShortWrite)
	}
	return nil
}
