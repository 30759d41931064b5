// Package calendar steps timestamps by civil calendar units rather than by
// fixed-length approximations of them.
package calendar

import "time"

// AddMonths moves t by n months, keeping the wall clock. The day of month is
// clamped to the last day of the target month, so Jan 31 + 1 month is Feb 28
// (or 29) instead of overflowing into March.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + n
	year += floorDiv(total, 12)
	month = time.Month(total-floorDiv(total, 12)*12) + 1

	if last := DaysIn(month, year); day > last {
		day = last
	}

	hour, minute, sec := t.Clock()
	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// AddYears moves t by n years with the same clamping rule as AddMonths
// (Feb 29 + 1 year = Feb 28).
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// AddDays moves t by n civil days in t's location.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysIn returns the number of days in the given month of year.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsMidnight reports whether t falls exactly on the start of its day.
func IsMidnight(t time.Time) bool {
	hour, minute, sec := t.Clock()
	return hour == 0 && minute == 0 && sec == 0 && t.Nanosecond() == 0
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
