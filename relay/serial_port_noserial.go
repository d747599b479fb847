//go:build noserial

package relay

import "fmt"

// OpenSerial always fails in builds without serial support
func OpenSerial(name string, baud int) (Port, error) {
	return nil, fmt.Errorf("serial port support not available in this build")
}
