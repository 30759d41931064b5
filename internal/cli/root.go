// Package cli implements the timely command tree.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmortlock/timely/internal/config"
)

// RootOptions holds global flags and the state resolved from them before a
// subcommand runs.
type RootOptions struct {
	ConfigPath string
	Timezone   string
	Verbose    bool

	config   *config.Config
	location *time.Location
	logger   *slog.Logger
}

// NewRootCommand creates the root command for the timely CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "timely",
		Short: "Describe and test recurring calendar patterns",
		Long: `timely works with recurring calendar patterns: sets of date ranges
sampled at a fixed frequency, such as every Monday in January.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Timezone, "timezone", "", "zone for times without an offset (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewDatetimesCommand(opts))
	cmd.AddCommand(NewMatchCommand(opts))
	cmd.AddCommand(NewJoinCommand(opts))

	return cmd
}

func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.Timezone != "" {
		cfg.Timezone = o.Timezone
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	o.config = cfg
	o.location = loc
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.logger.Debug("effective config",
		"timezone", cfg.Timezone,
		"log_level", cfg.LogLevel,
		"max_datetimes", cfg.MaxDatetimes)
	return nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
