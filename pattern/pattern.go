package pattern

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Pattern is a set of intervals sampled at a fixed frequency. It is immutable
// once New returns and safe for concurrent use.
type Pattern struct {
	intervals []Interval
	frequency Frequency
	logger    *slog.Logger
}

// New builds a pattern from intervals and a step frequency. The intervals are
// copied and sorted by their start, and a duration-built frequency is
// reinterpreted as a calendar step when every interval is aligned to whole
// months or years.
func New(intervals []Interval, freq Frequency, opts ...Option) (*Pattern, error) {
	o := newOptions(opts)

	if len(intervals) == 0 {
		return nil, ErrEmptyPattern
	}
	if !freq.valid() {
		return nil, fmt.Errorf("%w: step of %s", ErrInvalidFrequency, freq.Duration())
	}
	for i, iv := range intervals {
		if !iv.valid() {
			return nil, fmt.Errorf("%w: interval %d starts %s after it ends %s", ErrInvalidInterval, i,
				iv.First.Format(time.RFC3339), iv.Last.Format(time.RFC3339))
		}
	}

	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, Interval.Compare)

	normalized := normalize(freq, sorted)
	if normalized != freq {
		o.logger.Debug("normalized frequency",
			"from", freq.String(),
			"to", normalized.String(),
			"intervals", len(sorted))
	}

	return &Pattern{
		intervals: sorted,
		frequency: normalized,
		logger:    o.logger,
	}, nil
}

// Intervals returns a copy of the intervals in start order.
func (p *Pattern) Intervals() []Interval {
	return slices.Clone(p.intervals)
}

// Frequency returns the normalized step frequency.
func (p *Pattern) Frequency() Frequency {
	return p.frequency
}

// Ranges returns the [First, Last] pair of every interval.
func (p *Pattern) Ranges() [][2]time.Time {
	out := make([][2]time.Time, len(p.intervals))
	for i, iv := range p.intervals {
		out[i] = [2]time.Time{iv.First, iv.Last}
	}
	return out
}

// FirstDatetime returns the earliest interval start.
func (p *Pattern) FirstDatetime() time.Time {
	return p.intervals[0].First
}

// LastDatetime returns the latest interval end.
func (p *Pattern) LastDatetime() time.Time {
	last := p.intervals[0].Last
	for _, iv := range p.intervals[1:] {
		if iv.Last.After(last) {
			last = iv.Last
		}
	}
	return last
}

// SurroundingInterval returns the smallest interval covering every interval
// of the pattern.
func (p *Pattern) SurroundingInterval() Interval {
	return Interval{First: p.FirstDatetime(), Last: p.LastDatetime()}
}

// Compare orders patterns by their number of intervals only, so that
// slices.SortFunc(patterns, (*Pattern).Compare) puts simpler patterns first.
// Patterns with the same count compare equal whatever their content.
func (p *Pattern) Compare(other *Pattern) int {
	return cmp.Compare(len(p.intervals), len(other.intervals))
}
