package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format used in log files and on the CLI.
const DateLayout = "2006-01-02"

// Date truncates a timestamp to a calendar date (midnight UTC).
// All dates handled by the tracker are normalized this way so they
// compare equal regardless of where they came from.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns today's calendar date.
func Today() time.Time {
	return Date(time.Now())
}

// ParseDate parses a YYYY-MM-DD date string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date(t), nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfWeek returns the Monday of the week containing the given date.
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return Date(date.AddDate(0, 0, -(weekday - 1)))
}

// WeekendOf returns the Saturday and Sunday of the week containing the
// given date.
func WeekendOf(date time.Time) (saturday, sunday time.Time) {
	monday := StartOfWeek(date)
	return monday.AddDate(0, 0, 5), monday.AddDate(0, 0, 6)
}

// WeekNumber returns the ISO 8601 week number for the given date.
// Note the ISO week year may differ from the calendar year near year
// boundaries (e.g. 2025-12-29 is W01 of 2026).
func WeekNumber(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// IsWeekday returns true if the date is Monday-Friday.
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// SameDay returns true if two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
