// Command pixecs drives the playfield in an ebiten window or headless for
// stress runs.
package main

import (
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pixecs",
		Short:         "A small entity component system driving a pixel playfield",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "pixecs.env", "KEY=VALUE config file, ignored when missing")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newStressCmd(opts))
	return cmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid log level %q", level)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger, _ := newLogger("error")
		logger.Error().Msg(eris.ToString(err, false))
		os.Exit(1)
	}
}
