package pattern

import (
	"slices"
	"time"

	"github.com/samber/mo"
)

// Join merges other into p when both step at the same frequency and every
// interval of p lines up, within one step, with an interval of other.
//
// Join is experimental. Each series of other is paired with the first
// interval of p whose series, extended by one step at either end, shares an
// instant with it; scanning stops at the first series that pairs with
// nothing. The merged pattern exists only when the number of pairs equals the
// number of intervals in p, and it steps at p's frequency. Patterns with
// differing interval counts or several plausible pairings can therefore fail
// to join, or join asymmetrically.
//
// A pattern that cannot be joined yields mo.None; that is an expected
// outcome, not an error.
func (p *Pattern) Join(other *Pattern) mo.Option[*Pattern] {
	if !p.frequency.Equal(other.frequency) {
		p.logger.Debug("join refused: frequencies differ",
			"frequency", p.frequency.String(),
			"other", other.frequency.String())
		return mo.None[*Pattern]()
	}

	padded := make([][]time.Time, len(p.intervals))
	for i, series := range p.Datetimes() {
		padded[i] = p.pad(series)
	}

	var joints []Interval
	for _, theirs := range other.Datetimes() {
		idx := slices.IndexFunc(padded, func(ours []time.Time) bool {
			return sharesInstant(ours, theirs)
		})
		if idx < 0 {
			break
		}

		ours := padded[idx]
		merged := append(slices.Clone(theirs), ours[1:len(ours)-1]...)
		slices.SortFunc(merged, time.Time.Compare)
		joints = append(joints, Interval{First: merged[0], Last: merged[len(merged)-1]})
	}

	if len(joints) != len(p.intervals) {
		p.logger.Debug("join refused: intervals do not pair up",
			"pairs", len(joints),
			"intervals", len(p.intervals))
		return mo.None[*Pattern]()
	}

	joined, err := New(joints, p.frequency, WithLogger(p.logger))
	if err != nil {
		p.logger.Debug("join refused", "err", err)
		return mo.None[*Pattern]()
	}
	return mo.Some(joined)
}

// pad extends a series by one step before its first and after its last
// instant.
func (p *Pattern) pad(series []time.Time) []time.Time {
	out := make([]time.Time, 0, len(series)+2)
	out = append(out, p.frequency.Step(series[0], -1))
	out = append(out, series...)
	return append(out, p.frequency.Step(series[len(series)-1], 1))
}

func sharesInstant(a, b []time.Time) bool {
	for _, t := range a {
		if slices.ContainsFunc(b, t.Equal) {
			return true
		}
	}
	return false
}
