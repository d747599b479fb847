package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relay-ctrl/relay"
)

// MockPort implements relay.Port for testing
type MockPort struct {
	written [][]byte
	closed  bool
}

func (p *MockPort) Write(b []byte) (int, error) {
	p.written = append(p.written, append([]byte(nil), b...))
	return len(b), nil
}

func (p *MockPort) Close() error {
	p.closed = true
	return nil
}

// MockOpener counts open attempts and hands out a single MockPort
type MockOpener struct {
	port  *MockPort
	err   error
	names []string
	bauds []int
}

func (o *MockOpener) Open(name string, baud int) (relay.Port, error) {
	o.names = append(o.names, name)
	o.bauds = append(o.bauds, baud)
	if o.err != nil {
		return nil, o.err
	}
	return o.port, nil
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		openErr   error
		wantCode  int
		wantOpens int
		wantWrite []byte
		wantOut   string
		wantErr   string
	}{
		{
			name:      "relay 1 on",
			args:      []string{"/dev/ttyUSB0", "1", "1"},
			wantCode:  0,
			wantOpens: 1,
			wantWrite: []byte{0xF0, 0x00, 0x01},
			wantOut:   "Relay controller tool",
		},
		{
			name:      "relay 4 off",
			args:      []string{"COM3", "4", "0"},
			wantCode:  0,
			wantOpens: 1,
			wantWrite: []byte{0xF0, 0x03, 0x00},
		},
		{
			name:      "state passed through",
			args:      []string{"/dev/ttyUSB0", "2", "200"},
			wantCode:  0,
			wantOpens: 1,
			wantWrite: []byte{0xF0, 0x01, 0xC8},
		},
		{
			name:     "no arguments",
			args:     []string{},
			wantCode: 1,
			wantErr:  "accepts 3 arg(s), received 0",
		},
		{
			name:     "missing state",
			args:     []string{"/dev/ttyUSB0", "1"},
			wantCode: 1,
			wantErr:  "accepts 3 arg(s), received 2",
		},
		{
			name:     "too many arguments",
			args:     []string{"/dev/ttyUSB0", "1", "1", "1"},
			wantCode: 1,
		},
		{
			name:     "relay not an integer",
			args:     []string{"/dev/ttyUSB0", "one", "1"},
			wantCode: 1,
			wantErr:  "relay number \"one\" is not an integer",
		},
		{
			name:     "state not an integer",
			args:     []string{"/dev/ttyUSB0", "1", "on"},
			wantCode: 1,
			wantErr:  "state \"on\" is not an integer",
		},
		{
			name:     "relay zero",
			args:     []string{"/dev/ttyUSB0", "0", "1"},
			wantCode: 1,
			wantErr:  "relay number out of range",
		},
		{
			name:     "state out of byte range",
			args:     []string{"/dev/ttyUSB0", "1", "256"},
			wantCode: 1,
			wantErr:  "does not fit in a byte",
		},
		{
			name:      "port cannot be opened",
			args:      []string{"/dev/missing", "1", "1"},
			openErr:   errors.New("open /dev/missing: no such file or directory"),
			wantCode:  1,
			wantOpens: 1,
			wantErr:   "no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := &MockOpener{port: &MockPort{}, err: tt.openErr}
			var stdout, stderr bytes.Buffer

			code := execute(tt.args, &stdout, &stderr, opener.Open)

			assert.Equal(t, tt.wantCode, code)
			assert.Len(t, opener.names, tt.wantOpens)
			if tt.wantWrite != nil {
				require.Len(t, opener.port.written, 1)
				assert.Equal(t, tt.wantWrite, opener.port.written[0])
				assert.True(t, opener.port.closed)
				assert.Equal(t, []string{tt.args[0]}, opener.names)
				assert.Equal(t, []int{relay.DefaultBaud}, opener.bauds)
			} else {
				assert.Empty(t, opener.port.written)
			}
			if tt.wantOut != "" {
				assert.Contains(t, stdout.String(), tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestExecuteQuiet(t *testing.T) {
	opener := &MockOpener{port: &MockPort{}}
	var stdout, stderr bytes.Buffer

	code := execute([]string{"--quiet", "/dev/ttyUSB0", "3", "1"}, &stdout, &stderr, opener.Open)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
	require.Len(t, opener.port.written, 1)
	assert.Equal(t, []byte{0xF0, 0x02, 0x01}, opener.port.written[0])
}

func TestExecuteVersion(t *testing.T) {
	opener := &MockOpener{port: &MockPort{}}
	var stdout, stderr bytes.Buffer

	code := execute([]string{"--version"}, &stdout, &stderr, opener.Open)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "1.0.0")
	assert.Empty(t, opener.names)
}

func TestExecuteInfoLogging(t *testing.T) {
	opener := &MockOpener{port: &MockPort{}}
	var stdout, stderr bytes.Buffer

	code := execute([]string{"-q", "--log-level", "info", "/dev/ttyUSB0", "5", "0"}, &stdout, &stderr, opener.Open)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "relay command sent")
}

func TestParseArgs(t *testing.T) {
	relayNum, state, err := parseArgs("7", "1")
	require.NoError(t, err)
	assert.Equal(t, 7, relayNum)
	assert.Equal(t, byte(1), state)

	_, _, err = parseArgs("x", "1")
	assert.ErrorIs(t, err, ErrArgument)

	_, _, err = parseArgs("1", "-1")
	assert.ErrorIs(t, err, ErrArgument)
}
