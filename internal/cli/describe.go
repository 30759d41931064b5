package cli

import (
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	var flags patternFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print a pattern as an English phrase",
		Example: `  timely describe --every "1 week" -i 2023-01-02/2023-01-30
  timely describe --every month -i 2023-01-15/2023-06-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.build(rootOpts)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", p)
			return nil
		},
	}
	flags.register(cmd, "every", "interval", "i")

	return cmd
}
