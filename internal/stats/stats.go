// Package stats aggregates tracked entries over date ranges and formats
// the reports shown by the CLI and the interactive shell.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/internal/store"
	"github.com/username/seat-tracker/pkg/dateutil"
)

// Report holds aggregate counts for one date range. Only days with an
// actual entry are counted; untracked days are never assigned a default.
type Report struct {
	Start        time.Time
	End          time.Time
	CalendarDays int // total days in the range
	TrackedDays  int // days with an entry
	Counts       map[location.Designation]int
}

// Reporter produces aggregate statistics over a store.
type Reporter struct {
	store *store.Store
}

// NewReporter creates a reporter backed by the given store.
func NewReporter(s *store.Store) *Reporter {
	return &Reporter{store: s}
}

// Period aggregates designation counts over the inclusive date range.
func (r *Reporter) Period(start, end time.Time) (*Report, error) {
	entries, err := r.store.Range(start, end)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Start:        dateutil.Date(start),
		End:          dateutil.Date(end),
		CalendarDays: int(dateutil.Date(end).Sub(dateutil.Date(start)).Hours()/24) + 1,
		TrackedDays:  len(entries),
		Counts:       make(map[location.Designation]int),
	}
	for _, e := range entries {
		report.Counts[e.Designation]++
	}
	return report, nil
}

// LastDays aggregates the n days ending on (and including) end.
func (r *Reporter) LastDays(n int, end time.Time) (*Report, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of days must be positive, got %d", n)
	}
	end = dateutil.Date(end)
	return r.Period(end.AddDate(0, 0, -(n-1)), end)
}

// Percentage formats count as a share of total, "0.0%" when total is zero.
func Percentage(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}

// FormatReport renders a period report: coverage, then a per-designation
// breakdown sorted by count descending.
func FormatReport(report *Report) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Work Location Statistics (%d days)", report.CalendarDays))
	lines = append(lines, fmt.Sprintf("Period: %s to %s",
		dateutil.FormatDate(report.Start), dateutil.FormatDate(report.End)))

	if report.TrackedDays < report.CalendarDays {
		lines = append(lines, fmt.Sprintf("Data Coverage: %d/%d days (%s)",
			report.TrackedDays, report.CalendarDays,
			Percentage(report.TrackedDays, report.CalendarDays)))
		lines = append(lines, fmt.Sprintf("Note: Statistics based on %d days with actual data entries", report.TrackedDays))
	} else {
		lines = append(lines, fmt.Sprintf("Total Days: %d", report.TrackedDays))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Breakdown (percentage of all %d days):", report.TrackedDays))
	lines = append(lines, strings.Repeat("-", 50))

	designations := make([]location.Designation, len(location.All))
	copy(designations, location.All)
	sort.SliceStable(designations, func(i, j int) bool {
		return report.Counts[designations[i]] > report.Counts[designations[j]]
	})

	for _, d := range designations {
		count := report.Counts[d]
		prefix := fmt.Sprintf(" (%s) %s", d.Code(), d.Description())
		lines = append(lines, fmt.Sprintf("%-20s Count: %4d  |  %6s",
			prefix, count, Percentage(count, report.TrackedDays)))
	}

	lines = append(lines, strings.Repeat("-", 50))
	return strings.Join(lines, "\n")
}

// FormatSummaryReport renders the 30/90/365-day reports in one block.
func (r *Reporter) FormatSummaryReport(today time.Time) (string, error) {
	var lines []string
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, "WORK LOCATION SUMMARY REPORT")
	lines = append(lines, fmt.Sprintf("Generated: %s", dateutil.FormatDate(today)))
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, "")

	for _, days := range []int{30, 90, 365} {
		report, err := r.LastDays(days, today)
		if err != nil {
			return "", err
		}
		lines = append(lines, FormatReport(report), "", "")
	}

	lines = append(lines, strings.Repeat("=", 50))
	return strings.Join(lines, "\n"), nil
}

// FormatWorkSummary renders a report focused on working days: HOME, LAB
// and TRAVEL count as work; WEEKEND, VACATION and HOLIDAY do not.
func FormatWorkSummary(report *Report) string {
	workDays := report.Counts[location.Home] + report.Counts[location.Lab] + report.Counts[location.Travel]
	nonWorkDays := report.Counts[location.Weekend] + report.Counts[location.Vacation] + report.Counts[location.Holiday]
	totalDays := report.TrackedDays

	var lines []string
	lines = append(lines, fmt.Sprintf("Work Days Summary (%s to %s)",
		dateutil.FormatDate(report.Start), dateutil.FormatDate(report.End)))
	lines = append(lines, strings.Repeat("-", 40))
	lines = append(lines, fmt.Sprintf("Total Work Days: %d/%d (%s of all days)",
		workDays, totalDays, Percentage(workDays, totalDays)))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Work Breakdown (percentage of %d work days only):", workDays))

	if workDays > 0 {
		for _, d := range []location.Designation{location.Home, location.Lab, location.Travel} {
			count := report.Counts[d]
			lines = append(lines, fmt.Sprintf("  %-6s: %3d (%s)", d.Name(), count, Percentage(count, workDays)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Non-Work Days: %2d/%d (%s)",
		nonWorkDays, totalDays, Percentage(nonWorkDays, totalDays)))

	if workDays > 0 {
		labTravel := report.Counts[location.Lab] + report.Counts[location.Travel]
		labTravelHome := labTravel + report.Counts[location.Home]
		lines = append(lines, fmt.Sprintf("   Lab + Travel: %2d/%d (%s)",
			labTravel, workDays, Percentage(labTravel, workDays)))
		lines = append(lines, fmt.Sprintf("Lab+Travel+Home: %2d/%d (%s)",
			labTravelHome, workDays, Percentage(labTravelHome, workDays)))
	}

	return strings.Join(lines, "\n")
}
