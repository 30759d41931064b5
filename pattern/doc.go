/*
Package pattern models recurring calendar patterns: a set of intervals
sampled at a fixed frequency, such as "every Monday between Jan 2 and Jan 30"
or "the 15th of each month from January to June".

# Building a pattern

	mondays, err := pattern.New(
		[]pattern.Interval{{First: jan2, Last: jan30}},
		pattern.Frequency{Magnitude: 1, Unit: pattern.Weeks},
	)
	if err != nil {
		return err
	}
	fmt.Println(mondays) // every Monday, Jan 2–Jan 30, 2023

Build accepts looser input (single values, pairs, strings, raw durations)
and converts it before calling New.

# Frequencies

A Frequency built with Every steps in calendar units: months and years are
stepped on the calendar, and a day of month missing from a shorter month is
clamped to its last day. A Frequency built with FromDuration steps by a fixed
duration. When every interval of a pattern starts and ends on the same day of
the month (or the same day of the year), New turns such a duration into the
equivalent whole number of months (or years) so that long series do not
drift.

# Queries

Datetimes lists the instants of each interval, Match checks that a set of
instants is covered, Join merges two aligned patterns (experimental), and
String renders an English description. A Pattern never changes after New
returns, so all queries are safe for concurrent use.
*/
package pattern
