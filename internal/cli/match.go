package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jmortlock/timely/pattern"
)

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	var flags patternFlags

	cmd := &cobra.Command{
		Use:   "match <time>...",
		Short: "Report whether every given time is an instant of the pattern",
		Example: `  timely match --every "1 week" -i 2023-01-02/2023-01-30 2023-01-09 2023-01-16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.build(rootOpts)
			if err != nil {
				return err
			}

			candidates := make([]time.Time, 0, len(args))
			for _, arg := range args {
				t, err := pattern.ParseTime(arg, rootOpts.location)
				if err != nil {
					// An unreadable time can never be covered.
					rootOpts.logger.Debug("match: unreadable time", "value", arg, "err", err)
					printf(cmd, "false\n")
					return nil
				}
				candidates = append(candidates, t)
			}

			printf(cmd, "%t\n", p.Match(candidates))
			return nil
		},
	}
	flags.register(cmd, "every", "interval", "i")

	return cmd
}
