// Package phrase renders dates, clocks, ordinals and word lists as short
// English phrases.
package phrase

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/jmortlock/timely/internal/calendar"
)

const (
	dateLayout      = "Jan 2, 2006"
	shortDateLayout = "Jan 2"
	clockLayout     = "3:04pm"

	// spanSeparator joins the two ends of a range.
	spanSeparator = "–"
)

// Ordinal formats n as "1st", "2nd", "15th".
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// Sentence joins words as "a", "a and b" or "a, b, and c".
func Sentence(words []string) string {
	return english.OxfordWordSeries(words, "and")
}

// Count formats a quantity with its pluralised unit ("1 day", "3 months").
func Count(n int, unit string) string {
	return english.Plural(n, unit, "")
}

// Date formats t as "Jan 2, 2023".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Clock formats the time of day of t as "9:00am".
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// Moment formats a single instant, adding the clock only when t is not
// midnight: "May 1, 2023" or "May 1, 2023 at 9:30am".
func Moment(t time.Time) string {
	if calendar.IsMidnight(t) {
		return Date(t)
	}
	return Date(t) + " at " + Clock(t)
}

// DateSpan formats the calendar days covered by [first, last], ignoring the
// time of day: "Jan 2–Jan 30, 2023" within one year, full dates otherwise.
func DateSpan(first, last time.Time) string {
	switch {
	case sameDay(first, last):
		return Date(first)
	case first.Year() == last.Year():
		return first.Format(shortDateLayout) + spanSeparator + Date(last)
	default:
		return Date(first) + spanSeparator + Date(last)
	}
}

// TimeSpan formats [first, last] with clocks when either end is not midnight.
func TimeSpan(first, last time.Time) string {
	if calendar.IsMidnight(first) && calendar.IsMidnight(last) {
		return DateSpan(first, last)
	}
	if sameDay(first, last) {
		return Date(first) + " " + Clock(first) + spanSeparator + Clock(last)
	}
	return Date(first) + " " + Clock(first) + spanSeparator + Date(last) + " " + Clock(last)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
