// Package timeutil holds the clock, date and month arithmetic shared by
// attendance, shift and payroll code. All values travel as strings:
// "HH:MM" (24h), "YYYY-MM-DD" and "YYYY-MM". These formats sort
// lexicographically, which the ledgers rely on for prefix and range checks.
package timeutil

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// HoursBetween returns the fractional hours worked between a clock-in and a
// clock-out. Either value missing yields 0. A clock-out earlier than the
// clock-in is treated as crossing midnight, so the result is always in
// [0, 24). Equal values yield 0, never 24.
//
// The result is not rounded; use Round2 for display only.
func HoursBetween(clockIn, clockOut string) float64 {
	if clockIn == "" || clockOut == "" {
		return 0
	}
	inH, inM, ok := splitClock(clockIn)
	if !ok {
		return 0
	}
	outH, outM, ok := splitClock(clockOut)
	if !ok {
		return 0
	}

	diff := (float64(outH) + float64(outM)/60) - (float64(inH) + float64(inM)/60)
	if diff < 0 {
		diff += 24
	}
	return diff
}

// MinutesOfDay converts "HH:MM" to minutes since midnight.
func MinutesOfDay(clock string) (int, bool) {
	h, m, ok := splitClock(clock)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func splitClock(clock string) (int, int, bool) {
	hs, ms, found := strings.Cut(strings.TrimSpace(clock), ":")
	if !found {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ValidClock reports whether s is a well formed "HH:MM" value.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, _, ok := splitClock(s)
	return ok
}

// ValidDate reports whether s is a well formed "YYYY-MM-DD" value.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidMonth reports whether s is a well formed "YYYY-MM" value.
func ValidMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// MonthOf returns the "YYYY-MM" prefix of a date. Values shorter than a month
// are returned unchanged.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// InMonth reports whether date falls in month by string prefix.
func InMonth(date, month string) bool {
	return month != "" && strings.HasPrefix(date, month)
}

// MonthDiff returns the inclusive number of months between two "YYYY-MM"
// boundaries. Reversed ranges are clamped to 0. Unparseable boundaries also
// yield 0.
func MonthDiff(start, end string) int {
	s, err := time.Parse(MonthLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(MonthLayout, end)
	if err != nil {
		return 0
	}
	n := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month()) + 1
	if n < 0 {
		return 0
	}
	return n
}

// DaysInclusive counts calendar days from start to end, both included.
// Reversed or invalid ranges yield 0.
func DaysInclusive(start, end string) int {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0
	}
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// Today returns the current date in loc as "YYYY-MM-DD".
func Today(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format(DateLayout)
}
