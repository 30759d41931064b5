package pattern

// normalize reinterprets a duration-built frequency as an exact calendar step
// when every interval is aligned to it, so stepping does not drift with the
// varying lengths of months and years. The month count is the magnitude
// FromDuration already reports, so 45 days is one month. Exact frequencies
// are returned as is.
func normalize(f Frequency, intervals []Interval) Frequency {
	if f.Exact() {
		return f
	}

	d := f.Duration()
	month := Months.Nominal()
	year := 12 * month

	switch {
	case d > month && d < year && all(intervals, sameDayOfMonth):
		return Frequency{Magnitude: int(d / month), Unit: Months}
	case d >= year && all(intervals, sameDayOfYear):
		return Frequency{Magnitude: int(d / year), Unit: Years}
	}
	return f
}

func sameDayOfMonth(iv Interval) bool {
	return iv.First.Day() == iv.Last.Day()
}

func sameDayOfYear(iv Interval) bool {
	return iv.First.Month() == iv.Last.Month() && iv.First.Day() == iv.Last.Day()
}

func all(intervals []Interval, pred func(Interval) bool) bool {
	for _, iv := range intervals {
		if !pred(iv) {
			return false
		}
	}
	return true
}
