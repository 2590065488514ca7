package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/shroud"
	"github.com/iw2rmb/shroud/internal/config"
)

type rootOptions struct {
	configPath string
	logFile    string
	debug      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "shroud",
		Short:         "Edit and inspect text with privacy masking",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			if opts.configPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				opts.configPath = p
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newEditCmd(opts), newMaskCmd(opts), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), shroud.VersionTag())
			return err
		},
	}
}

// logger opens the configured log destination. With no --log-file, records
// go to fallback; a nil fallback discards them.
func (o *rootOptions) logger(fallback io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if o.logFile == "" {
		if fallback == nil {
			return discardLogger(), func() {}, nil
		}
		return slog.New(slog.NewTextHandler(fallback, handlerOpts)), func() {}, nil
	}

	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, handlerOpts)), func() { f.Close() }, nil
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
