package relay

// Command bytes understood by the relay board
const (
	// HeaderByte opens every command frame
	HeaderByte byte = 0xF0

	StateOff byte = 0x00
	StateOn  byte = 0x01
)

// DefaultBaud is the line speed the board firmware listens on
const DefaultBaud = 9600
