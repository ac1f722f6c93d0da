// Package epochhour counts whole hours since 1970-01-01 00:00:00 UTC.
// Daylight saving transition tables are expressed in epoch hours, so
// instants are quantized to this granularity before they are compared
// against transition points.
package epochhour

import "time"

// FromTime returns the number of whole hours between the Unix epoch and t.
// All instants within the same hour map to the same value. Pre-epoch
// instants floor towards the past, so 1969-12-31 23:59:59 UTC is hour -1.
func FromTime(t time.Time) int64 {
	return floorDiv(t.Unix(), secondsPerHour)
}

// FromDateTime converts a given date and hour, UTC, to epoch hours.
// It ignores leap seconds but respects leap years. It assumes the proleptic Gregorian calendar.
// This implementation is based on the Go standard library's time package but does not depend on time.Location.
func FromDateTime(year int, month time.Month, day int, hour int) int64 {
	daysSinceStartOfYear := []uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

	d := daysSinceEpoch(year) + daysSinceStartOfYear[month-1] + (uint64(day) - 1)
	if month > time.February && (year%4 == 0 && (year%100 != 0 || year%400 == 0)) {
		d++ // +leap year
	}
	abs := d*hoursPerDay + uint64(hour)
	return int64(abs) + (absoluteToInternal+internalToUnix)/secondsPerHour
}

// Time returns the instant at which hour h begins.
func Time(h int64) time.Time {
	return time.Unix(h*secondsPerHour, 0).UTC()
}

// floorDiv rounds towards negative infinity, unlike Go's integer
// division which truncates towards zero.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// The constants were copied from time.go in the Go standard library's time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	hoursPerDay      = 24
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
