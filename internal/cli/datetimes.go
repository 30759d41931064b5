package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// NewDatetimesCommand creates the datetimes command.
func NewDatetimesCommand(rootOpts *RootOptions) *cobra.Command {
	var flags patternFlags

	cmd := &cobra.Command{
		Use:   "datetimes",
		Short: "List the instants of a pattern, one interval at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.build(rootOpts)
			if err != nil {
				return err
			}

			limit := rootOpts.config.MaxDatetimes
			intervals := p.Intervals()
			for i, series := range p.Datetimes() {
				if i > 0 {
					printf(cmd, "\n")
				}
				printf(cmd, "# %s\n", intervals[i])
				for j, t := range series {
					if j == limit {
						printf(cmd, "... %d more\n", len(series)-limit)
						break
					}
					printf(cmd, "%s\n", t.Format(time.RFC3339))
				}
			}
			return nil
		},
	}
	flags.register(cmd, "every", "interval", "i")

	return cmd
}
