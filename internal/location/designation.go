// Package location defines the closed set of daily work location
// designations and their string representations.
package location

import (
	"fmt"
	"strings"
	"time"
)

// Designation represents a work location designation for a single day.
type Designation int

const (
	Home Designation = iota + 1
	Lab
	Travel
	Weekend
	Vacation
	Holiday
	Other
)

// All lists every valid designation in display order.
var All = []Designation{Home, Lab, Travel, Weekend, Vacation, Holiday, Other}

// info holds the fixed code/name/description mapping for one designation.
// Codes and names are both unique, so either direction resolves to exactly
// one designation.
type info struct {
	code        string
	name        string
	description string
}

var table = map[Designation]info{
	Home:     {"H", "HOME", "Work From Home"},
	Lab:      {"L", "LAB", "Work From Lab"},
	Travel:   {"T", "TRAVEL", "Work Travel"},
	Weekend:  {"W", "WEEKEND", "Weekend"},
	Vacation: {"V", "VACATION", "Vacation"},
	Holiday:  {"X", "HOLIDAY", "Holiday"},
	Other:    {"O", "OTHER", "Other"},
}

// Code returns the single-letter short code (e.g. "H").
func (d Designation) Code() string {
	return table[d].code
}

// Name returns the uppercase full name as stored in log files (e.g. "HOME").
func (d Designation) Name() string {
	return table[d].name
}

// Description returns the human-readable description (e.g. "Work From Home").
func (d Designation) Description() string {
	return table[d].description
}

// String implements fmt.Stringer using the full name.
func (d Designation) String() string {
	return d.Name()
}

// Valid reports whether d is one of the seven known designations.
func (d Designation) Valid() bool {
	_, ok := table[d]
	return ok
}

// Parse resolves a token to a designation. It accepts either the
// single-letter short code or the full name, case-insensitively.
func Parse(token string) (Designation, error) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	for _, d := range All {
		if upper == table[d].code || upper == table[d].name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown designation %q: %w", token, ErrInvalidDesignation)
}

// DefaultFor returns the conventional designation for a weekday:
// Monday and Friday at home, Tuesday-Thursday in the lab, weekends off.
// This is guidance only; the store never substitutes it for missing data.
func DefaultFor(date time.Time) Designation {
	switch date.Weekday() {
	case time.Monday, time.Friday:
		return Home
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Lab
	}
}
