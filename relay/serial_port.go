//go:build !noserial

package relay

import (
	"github.com/tarm/serial"
)

// OpenSerial opens a serial port with 8N1 framing
func OpenSerial(name string, baud int) (Port, error) {
	c := &serial.Config{
		Name: name,
		Baud: baud,
	}
	s, err := serial.OpenPort(c)
	if err != nil {
		return nil, err
	}
	return s, nil
}
