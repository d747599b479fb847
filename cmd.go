package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"relay-ctrl/config"
	"relay-ctrl/logging"
	"relay-ctrl/relay"
	"relay-ctrl/types"
)

// ErrArgument marks a command line value that could not be used
var ErrArgument = errors.New("invalid argument")

// newRootCmd builds the relay-ctrl command; open is used to reach the port
func newRootCmd(open relay.Opener) *cobra.Command {
	about := types.About()

	cmd := &cobra.Command{
		Use:     "relay-ctrl <com_port> <relay_number> <state>",
		Short:   "Switch one relay on a USB relay board",
		Long:    "Sends a single command frame to a USB relay board over a serial port.\nState 1 switches the relay on, 0 switches it off.",
		Example: "  relay-ctrl /dev/ttyUSB0 4 1\n  relay-ctrl COM3 1 0",
		Version: about.Version,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			if !cfg.Quiet {
				fmt.Fprint(cmd.OutOrStdout(), about.Banner())
			}

			relayNum, state, err := parseArgs(args[1], args[2])
			if err != nil {
				return err
			}
			frame, err := relay.NewFrame(relayNum, state)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrArgument, err)
			}

			// Past this point failures are transport errors, not usage errors
			cmd.SilenceUsage = true

			logger := logging.New(cfg.Logging, cmd.ErrOrStderr())
			defer logger.Sync()

			board := relay.NewSerialBoard(args[0],
				relay.WithOpener(open),
				relay.WithLogger(logger))
			if err := board.Send(frame); err != nil {
				logger.Error("relay command failed",
					zap.String("port", args[0]),
					zap.Stringer("frame", frame),
					zap.Error(err))
				return err
			}

			logger.Info("relay command sent",
				zap.String("port", args[0]),
				zap.Int("relay", frame.Relay()),
				zap.Uint8("state", frame.State()))
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

// parseArgs converts the relay number and state arguments
func parseArgs(relayArg, stateArg string) (int, byte, error) {
	relayNum, err := strconv.Atoi(relayArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: relay number %q is not an integer", ErrArgument, relayArg)
	}

	state, err := strconv.Atoi(stateArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: state %q is not an integer", ErrArgument, stateArg)
	}
	if state < 0 || state > 255 {
		return 0, 0, fmt.Errorf("%w: state %d does not fit in a byte", ErrArgument, state)
	}

	return relayNum, byte(state), nil
}
