package pattern

import (
	"iter"
	"slices"
	"time"
)

// steps yields First, First+1 step, ... up to and including Last.
func (p *Pattern) steps(iv Interval) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for k := 0; ; k++ {
			t := p.frequency.Step(iv.First, k)
			if t.After(iv.Last) || !yield(t) {
				return
			}
		}
	}
}

// Datetimes returns the instants of every interval, one slice per interval in
// interval order. The series is computed afresh on each call.
func (p *Pattern) Datetimes() [][]time.Time {
	out := make([][]time.Time, len(p.intervals))
	for i, iv := range p.intervals {
		out[i] = slices.Collect(p.steps(iv))
	}
	return out
}

// Match reports whether every candidate is one of the pattern's instants. The
// pattern may denote more instants than the candidates; an empty candidate
// list always matches. The walk stops as soon as every candidate is found.
func (p *Pattern) Match(candidates []time.Time) bool {
	remaining := slices.Clone(candidates)
	if len(remaining) == 0 {
		return true
	}

	for _, iv := range p.intervals {
		for t := range p.steps(iv) {
			remaining = slices.DeleteFunc(remaining, t.Equal)
			if len(remaining) == 0 {
				return true
			}
		}
	}
	return false
}

// HasOccurrenceIn reports whether any instant of the pattern falls within
// [rangeStart, rangeEnd].
func (p *Pattern) HasOccurrenceIn(rangeStart, rangeEnd time.Time) bool {
	window := Interval{First: rangeStart, Last: rangeEnd}
	for _, iv := range p.intervals {
		// start <= rangeEnd AND end >= rangeStart
		if iv.First.After(rangeEnd) || iv.Last.Before(rangeStart) {
			continue
		}
		for t := range p.steps(iv) {
			if t.After(rangeEnd) {
				break
			}
			if window.Contains(t) {
				return true
			}
		}
	}
	return false
}
