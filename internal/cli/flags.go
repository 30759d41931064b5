package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmortlock/timely/pattern"
)

// patternFlags collects the flags that define one pattern.
type patternFlags struct {
	every     string
	intervals []string
}

func (f *patternFlags) register(cmd *cobra.Command, everyName, intervalName, intervalShort string) {
	cmd.Flags().StringVar(&f.every, everyName, "1 day", `step between instants ("1 week", "3 months", "36h")`)
	cmd.Flags().StringArrayVarP(&f.intervals, intervalName, intervalShort, nil,
		`interval as "start/end" or a single time; repeatable`)
}

func (f *patternFlags) build(opts *RootOptions) (*pattern.Pattern, error) {
	if len(f.intervals) == 0 {
		return nil, errors.New("at least one interval is required")
	}

	freq, err := pattern.ParseFrequency(f.every)
	if err != nil {
		return nil, err
	}

	intervals := make([]pattern.Interval, 0, len(f.intervals))
	for _, raw := range f.intervals {
		iv, err := pattern.ParseInterval(raw, opts.location)
		if err != nil {
			return nil, fmt.Errorf("interval %q: %w", raw, err)
		}
		intervals = append(intervals, iv)
	}

	return pattern.New(intervals, freq, pattern.WithLogger(opts.logger))
}
