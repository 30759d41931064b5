package pattern

import (
	"cmp"
	"slices"
	"time"

	"github.com/jmortlock/timely/internal/calendar"
	"github.com/jmortlock/timely/internal/phrase"
)

// String describes the pattern in English, e.g.
// "every Monday, Jan 2–Jan 30, 2023" or "every 15th of the month, Jan 15–Jun 15, 2023".
// Single-instant intervals are listed after the recurring phrase.
func (p *Pattern) String() string {
	var moments []string
	var ranges []Interval
	for _, iv := range p.intervals {
		if iv.IsMoment() {
			moments = append(moments, iv.String())
		} else {
			ranges = append(ranges, iv)
		}
	}

	if len(ranges) == 0 {
		return phrase.Sentence(moments)
	}

	lead := cadenceOf(p.frequency).describe(ranges)
	return phrase.Sentence(append([]string{lead}, moments...))
}

// cadence is the closed set of description styles.
type cadence interface {
	describe(ranges []Interval) string
}

type (
	yearly  struct{}
	monthly struct{}
	weekly  struct{}
	daily   struct{}
	other   struct{ frequency Frequency }
)

func cadenceOf(f Frequency) cadence {
	if !f.whole() {
		return other{frequency: f}
	}
	switch f.Unit {
	case Years:
		return yearly{}
	case Months:
		return monthly{}
	case Weeks:
		return weekly{}
	case Days:
		return daily{}
	}
	return other{frequency: f}
}

func (yearly) describe(ranges []Interval) string {
	type dayOfYear struct {
		month time.Month
		day   int
	}

	var seen []dayOfYear
	var words []string
	for _, iv := range ranges {
		key := dayOfYear{month: iv.First.Month(), day: iv.First.Day()}
		if slices.Contains(seen, key) {
			continue
		}
		seen = append(seen, key)
		words = append(words, "every "+phrase.Ordinal(key.day)+" of "+key.month.String())
	}
	return phrase.Sentence(words) + ", " + span(ranges)
}

func (monthly) describe(ranges []Interval) string {
	var seen []int
	var words []string
	for _, iv := range ranges {
		d := iv.First.Day()
		if slices.Contains(seen, d) {
			continue
		}
		seen = append(seen, d)
		words = append(words, "every "+phrase.Ordinal(d)+" of the month")
	}
	return phrase.Sentence(words) + ", " + span(ranges)
}

func (weekly) describe(ranges []Interval) string {
	var days []time.Weekday
	for _, iv := range ranges {
		if wd := iv.First.Weekday(); !slices.Contains(days, wd) {
			days = append(days, wd)
		}
	}
	if len(days) == 7 {
		return "every day, " + span(ranges)
	}

	// Monday first.
	slices.SortFunc(days, func(a, b time.Weekday) int {
		return cmp.Compare((a+6)%7, (b+6)%7)
	})
	names := make([]string, len(days))
	for i, wd := range days {
		names[i] = wd.String()
	}
	return "every " + phrase.Sentence(names) + ", " + span(ranges)
}

func (daily) describe(ranges []Interval) string {
	timed := slices.ContainsFunc(ranges, func(iv Interval) bool {
		return !calendar.IsMidnight(iv.First)
	})
	if !timed {
		return "every day, " + span(ranges)
	}

	starts := make([]time.Time, len(ranges))
	for i, iv := range ranges {
		starts[i] = iv.First
	}
	slices.SortFunc(starts, func(a, b time.Time) int {
		return cmp.Compare(clockOffset(a), clockOffset(b))
	})

	var clocks []string
	for _, t := range starts {
		if c := phrase.Clock(t); !slices.Contains(clocks, c) {
			clocks = append(clocks, c)
		}
	}
	return "every day at " + phrase.Sentence(clocks) + ", " + span(ranges)
}

func (o other) describe(ranges []Interval) string {
	parts := make([]string, len(ranges))
	for i, iv := range ranges {
		parts[i] = iv.String()
	}
	return o.frequency.String() + " " + phrase.Sentence(parts)
}

// span renders the days covered by all ranges together.
func span(ranges []Interval) string {
	first, last := ranges[0].First, ranges[0].Last
	for _, iv := range ranges[1:] {
		if iv.First.Before(first) {
			first = iv.First
		}
		if iv.Last.After(last) {
			last = iv.Last
		}
	}
	return phrase.DateSpan(first, last)
}

func clockOffset(t time.Time) time.Duration {
	hour, minute, sec := t.Clock()
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(sec)*time.Second + time.Duration(t.Nanosecond())
}
