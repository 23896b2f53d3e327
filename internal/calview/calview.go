// Package calview renders month, year and date-range calendars showing
// tracked work location designations. It is a pure read-side view over
// the store: cells with no entry stay blank.
package calview

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/internal/store"
	"github.com/username/seat-tracker/pkg/dateutil"
)

// ANSI escape codes.
const (
	colorReset     = "\033[0m"
	colorBold      = "\033[1m"
	colorUnderline = "\033[4m"
	colorWeek      = "\033[36m"   // cyan week numbers
	colorHome      = "\033[32m"   // green
	colorLab       = "\033[34m"   // blue
	colorTravel    = "\033[35m"   // magenta
	colorWeekend   = "\033[90m"   // dark gray
	colorVacation  = "\033[33m"   // yellow
	colorHoliday   = "\033[31m"   // red
	colorOther     = "\033[37m"   // white
)

// gridWidth is the rendered calendar width: W## prefix plus seven
// three-character day cells.
const gridWidth = 26

// Renderer draws calendars from store lookups.
type Renderer struct {
	store    *store.Store
	useColor bool
	today    time.Time
}

// New creates a renderer. Colors are ANSI escapes; pass useColor=false
// for plain output.
func New(s *store.Store, useColor bool) *Renderer {
	return &Renderer{store: s, useColor: useColor, today: dateutil.Today()}
}

func designationColor(d location.Designation) string {
	switch d {
	case location.Home:
		return colorHome
	case location.Lab:
		return colorLab
	case location.Travel:
		return colorTravel
	case location.Weekend:
		return colorWeekend
	case location.Vacation:
		return colorVacation
	case location.Holiday:
		return colorHoliday
	case location.Other:
		return colorOther
	default:
		return ""
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}

// Month renders a single month grid: a week-number prefix, a row of day
// numbers and a row of designation codes per week. Days of adjacent
// months that share a week row are shown too. Today is highlighted in
// bold and underline.
func (r *Renderer) Month(year int, month time.Month) (string, error) {
	var lines []string
	lines = append(lines, center(fmt.Sprintf("%s %d", month, year), gridWidth))
	lines = append(lines, "")
	lines = append(lines, "    Mo Tu We Th Fr Sa Su")
	lines = append(lines, strings.Repeat("-", gridWidth))

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	for monday := dateutil.StartOfWeek(first); !monday.After(last); monday = monday.AddDate(0, 0, 7) {
		var dayRow, desRow strings.Builder

		for i := 0; i < 7; i++ {
			day := monday.AddDate(0, 0, i)

			if dateutil.SameDay(day, r.today) {
				if r.useColor {
					dayRow.WriteString(fmt.Sprintf("%s%s%2d%s ", colorBold, colorUnderline, day.Day(), colorReset))
				} else {
					dayRow.WriteString(fmt.Sprintf("%2d*", day.Day()))
				}
			} else {
				dayRow.WriteString(fmt.Sprintf("%2d ", day.Day()))
			}

			d, ok, err := r.store.Get(day)
			if !ok || err != nil {
				// Untracked days render blank; a read failure on an
				// adjacent year is treated the same way.
				desRow.WriteString("   ")
				continue
			}
			if r.useColor {
				desRow.WriteString(fmt.Sprintf(" %s%s%s ", designationColor(d), d.Code(), colorReset))
			} else {
				desRow.WriteString(fmt.Sprintf(" %s ", d.Code()))
			}
		}

		weekPrefix := fmt.Sprintf("W%02d ", dateutil.WeekNumber(monday))
		if r.useColor {
			weekPrefix = fmt.Sprintf("%sW%02d%s ", colorWeek, dateutil.WeekNumber(monday), colorReset)
		}

		lines = append(lines, weekPrefix+strings.TrimRight(dayRow.String(), " "))
		lines = append(lines, "    "+strings.TrimRight(desRow.String(), " "))
	}

	return strings.Join(lines, "\n"), nil
}

// CurrentMonth renders the month containing today.
func (r *Renderer) CurrentMonth() (string, error) {
	return r.Month(r.today.Year(), r.today.Month())
}

// Year renders all twelve months of a year.
func (r *Renderer) Year(year int) (string, error) {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, center(fmt.Sprintf("%d", year), gridWidth))
	lines = append(lines, strings.Repeat("=", gridWidth))
	lines = append(lines, "")

	for month := time.January; month <= time.December; month++ {
		grid, err := r.Month(year, month)
		if err != nil {
			return "", err
		}
		lines = append(lines, grid, "")
	}

	return strings.Join(lines, "\n"), nil
}

// DateRange renders every month overlapping the inclusive range.
func (r *Renderer) DateRange(start, end time.Time) (string, error) {
	var lines []string

	lines = append(lines, fmt.Sprintf("\nDate Range: %s to %s (%d days)\n",
		dateutil.FormatDate(start), dateutil.FormatDate(end),
		int(dateutil.Date(end).Sub(dateutil.Date(start)).Hours()/24)+1))

	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	endMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !current.After(endMonth) {
		grid, err := r.Month(current.Year(), current.Month())
		if err != nil {
			return "", err
		}
		lines = append(lines, grid, "")
		current = current.AddDate(0, 1, 0)
	}

	return strings.Join(lines, "\n"), nil
}

// Legend returns a one-line key of designation codes plus a note about
// the today marker.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, len(location.All))
	for _, d := range location.All {
		name := titleCase(d.Name())
		if r.useColor {
			parts = append(parts, fmt.Sprintf("%s%s%s=%s", designationColor(d), d.Code(), colorReset, name))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", d.Code(), name))
		}
	}

	legend := "\nDesignations: " + strings.Join(parts, ", ")
	if r.useColor {
		legend += fmt.Sprintf("\nCurrent day shown in %sbold%s", colorBold, colorReset)
	} else {
		legend += "\nCurrent day marked with *"
	}
	return legend
}

// MonthWithLegend renders a month grid preceded by the legend.
func (r *Renderer) MonthWithLegend(year int, month time.Month) (string, error) {
	grid, err := r.Month(year, month)
	if err != nil {
		return "", err
	}
	return r.Legend() + "\n" + grid, nil
}

// CurrentMonthWithLegend renders the current month preceded by the legend.
func (r *Renderer) CurrentMonthWithLegend() (string, error) {
	return r.MonthWithLegend(r.today.Year(), r.today.Month())
}

// YearWithLegend renders a full year preceded by the legend.
func (r *Renderer) YearWithLegend(year int) (string, error) {
	grid, err := r.Year(year)
	if err != nil {
		return "", err
	}
	return r.Legend() + "\n" + grid, nil
}

// DateRangeWithLegend renders a date range preceded by the legend.
func (r *Renderer) DateRangeWithLegend(start, end time.Time) (string, error) {
	grid, err := r.DateRange(start, end)
	if err != nil {
		return "", err
	}
	return r.Legend() + "\n" + grid, nil
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	return name[:1] + strings.ToLower(name[1:])
}
