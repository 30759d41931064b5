package cli

import (
	"github.com/spf13/cobra"
)

// NewJoinCommand creates the join command.
func NewJoinCommand(rootOpts *RootOptions) *cobra.Command {
	var base, with patternFlags

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Merge two patterns stepping at the same frequency (experimental)",
		Example: `  timely join -i 2023-01-01/2023-01-03 -w 2023-01-02/2023-01-04`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("with-every") {
				with.every = base.every
			}

			p, err := base.build(rootOpts)
			if err != nil {
				return err
			}
			q, err := with.build(rootOpts)
			if err != nil {
				return err
			}

			joined, ok := p.Join(q).Get()
			if !ok {
				printf(cmd, "not joinable\n")
				return nil
			}
			printf(cmd, "%s\n", joined)
			return nil
		},
	}
	base.register(cmd, "every", "interval", "i")
	with.register(cmd, "with-every", "with", "w")

	return cmd
}
