package main

import (
	"io"
	"os"

	"relay-ctrl/relay"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, relay.OpenSerial))
}

// execute runs the command line and returns the process exit status
func execute(args []string, stdout, stderr io.Writer, open relay.Opener) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(open)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
