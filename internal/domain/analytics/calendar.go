// Package analytics implements the financial analytics engine: pure
// computations over a transaction ledger snapshot. Functions here read only
// their arguments, never mutate them, and never perform I/O; degenerate
// inputs produce empty or zero-filled results instead of errors.
package analytics

import (
	"fmt"
	"time"
)

// Granularity represents the time granularity for bucketed series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// Valid reports whether the granularity is one of the supported values.
func (g Granularity) Valid() bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}

// monthAbbreviations maps months to English abbreviations for period labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// weekdayOrder enumerates weekdays Sunday-first. Tie-breaking for the most
// active day follows this order.
var weekdayOrder = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// StartOfDay returns the date truncated to 00:00:00 in its location.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the last instant of the given calendar day.
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}

// EndOfMonth returns the last calendar day of the month containing date,
// truncated to midnight. Month length and leap years follow the standard
// library's calendar arithmetic.
func EndOfMonth(date time.Time) time.Time {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return firstOfMonth.AddDate(0, 1, -1)
}

// DaySpan returns the number of whole calendar days covered by the inclusive
// range [start, end], never less than 1.
func DaySpan(start, end time.Time) int {
	days := int(StartOfDay(end).Sub(StartOfDay(start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// InDayRange reports whether date falls within [start, end] inclusive at day
// granularity: start counts from 00:00:00 and end until 23:59:59.999 of the
// given calendar days. A zero date never matches; records whose dates failed
// to parse upstream are excluded from range filters rather than crashing the
// computation.
func InDayRange(date, start, end time.Time) bool {
	if date.IsZero() {
		return false
	}
	return !date.Before(StartOfDay(start)) && !date.After(EndOfDay(end))
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// PeriodKey returns a machine-sortable key for the bucket starting at start:
// "2006-01-02" for daily and weekly buckets (week keyed by its start day) and
// "2006-01" for monthly buckets.
func PeriodKey(start time.Time, granularity Granularity) string {
	if granularity == GranularityMonthly {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}

// PeriodLabel returns a human-readable label for the bucket [start, end].
func PeriodLabel(start, end time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityDaily:
		return fmt.Sprintf("%s %d", monthAbbreviations[start.Month()], start.Day())
	case GranularityWeekly:
		if start.Month() == end.Month() {
			return fmt.Sprintf("%s %d-%d", monthAbbreviations[start.Month()], start.Day(), end.Day())
		}
		return fmt.Sprintf("%s %d - %s %d",
			monthAbbreviations[start.Month()], start.Day(),
			monthAbbreviations[end.Month()], end.Day())
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[start.Month()], start.Year())
	default:
		return start.Format("2006-01-02")
	}
}
