package store

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/pkg/dateutil"
)

// Entry is one tracked day: its date, the ISO week number of that date,
// and the recorded designation.
type Entry struct {
	Date        time.Time
	Week        int
	Designation location.Designation
}

// YearStore holds the in-memory entry set for a single calendar year,
// backed by one <year>.log file.
type YearStore struct {
	Year    int
	days    map[time.Time]location.Designation
	defects []Defect
}

func newYearStore(year int) *YearStore {
	return &YearStore{
		Year: year,
		days: make(map[time.Time]location.Designation),
	}
}

// Get returns the designation recorded for the date, if any.
func (ys *YearStore) Get(date time.Time) (location.Designation, bool) {
	d, ok := ys.days[dateutil.Date(date)]
	return d, ok
}

// Len returns the number of tracked days in the year.
func (ys *YearStore) Len() int {
	return len(ys.days)
}

// Defects returns the validation findings collected while loading the
// year file. Loading tolerates damage; this is where it surfaces.
func (ys *YearStore) Defects() []Defect {
	return ys.defects
}

// Entries returns all tracked days of the year in ascending date order.
// Week numbers are recomputed from the dates.
func (ys *YearStore) Entries() []Entry {
	entries := make([]Entry, 0, len(ys.days))
	for date, d := range ys.days {
		entries = append(entries, Entry{Date: date, Week: dateutil.WeekNumber(date), Designation: d})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// parseLine parses one data line of a year file into an Entry.
// Expected format: YYYY-MM-DD|WXX|DESIGNATION_NAME
func parseLine(line string) (Entry, *Defect) {
	fields := strings.Split(line, "|")
	if len(fields) != 3 {
		return Entry{}, &Defect{Kind: DefectMalformedLine, Detail: line}
	}

	date, err := dateutil.ParseDate(fields[0])
	if err != nil {
		return Entry{}, &Defect{Kind: DefectMalformedLine, Detail: line}
	}

	weekField := fields[1]
	if len(weekField) != 3 || weekField[0] != 'W' {
		return Entry{}, &Defect{Kind: DefectMalformedLine, Detail: line}
	}
	week, err := strconv.Atoi(weekField[1:])
	if err != nil {
		return Entry{}, &Defect{Kind: DefectMalformedLine, Detail: line}
	}

	// Stored names are uppercase by contract; anything else was
	// hand-edited and is treated as malformed rather than resolved
	// case-insensitively.
	name := fields[2]
	if name == "" || name != strings.ToUpper(name) {
		return Entry{}, &Defect{Kind: DefectMalformedLine, Detail: line}
	}
	designation, err := location.Parse(name)
	if err != nil {
		return Entry{}, &Defect{Kind: DefectUnknownDesignation, Detail: name}
	}

	return Entry{Date: date, Week: week, Designation: designation}, nil
}

// formatLine formats an entry as a data line, recomputing the week
// number from the date.
func formatLine(date time.Time, d location.Designation) string {
	return fmt.Sprintf("%s|W%02d|%s", dateutil.FormatDate(date), dateutil.WeekNumber(date), d.Name())
}

// scanYearFile walks every line of a year file, calling entry for each
// parseable data line and collecting defects for everything else.
// Blank lines and #-comments are skipped. A missing file is not an
// error: it simply yields nothing.
func scanYearFile(path string, year int, entry func(lineNum int, e Entry)) ([]Defect, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open year file: %w", err)
	}
	defer file.Close()

	var defects []Defect
	seen := make(map[time.Time]int) // date -> first line seen

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, defect := parseLine(line)
		if defect != nil {
			defect.Line = lineNum
			defects = append(defects, *defect)
			continue
		}

		if expected := dateutil.WeekNumber(e.Date); e.Week != expected {
			defects = append(defects, Defect{
				Line: lineNum,
				Kind: DefectWeekMismatch,
				Detail: fmt.Sprintf("%s (expected W%02d, got W%02d)",
					dateutil.FormatDate(e.Date), expected, e.Week),
			})
		}

		if e.Date.Year() != year {
			defects = append(defects, Defect{
				Line:   lineNum,
				Kind:   DefectWrongYear,
				Detail: fmt.Sprintf("%s doesn't belong in %d.log", dateutil.FormatDate(e.Date), year),
			})
		}

		if first, dup := seen[e.Date]; dup {
			defects = append(defects, Defect{
				Line:   lineNum,
				Kind:   DefectDuplicateDate,
				Detail: fmt.Sprintf("%s first seen on line %d", dateutil.FormatDate(e.Date), first),
			})
		} else {
			seen[e.Date] = lineNum
		}

		entry(lineNum, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading year file: %w", err)
	}

	return defects, nil
}

// loadYearFile reads a year file into a YearStore, keeping every
// parseable entry. The last occurrence wins when a date is duplicated.
func loadYearFile(path string, year int) (*YearStore, error) {
	ys := newYearStore(year)

	defects, err := scanYearFile(path, year, func(_ int, e Entry) {
		ys.days[e.Date] = e.Designation
	})
	if err != nil {
		return nil, err
	}

	ys.defects = defects
	return ys, nil
}

// saveYearFile rewrites the year file from the in-memory entry set,
// sorted ascending by date. The content is written to a temp file and
// renamed into place so an interrupted write never leaves a truncated
// log behind.
func saveYearFile(path string, ys *YearStore) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Work Location Log for %d\n", ys.Year)
	b.WriteString("# Format: YYYY-MM-DD|WXX|DESIGNATION\n")
	b.WriteString("# Week ends on Sunday, new week starts on Monday\n")
	b.WriteString("# Valid designations: HOME(H), LAB(L), TRAVEL(T), WEEKEND(W), VACATION(V), HOLIDAY(X), OTHER(O)\n\n")

	for _, e := range ys.Entries() {
		b.WriteString(formatLine(e.Date, e.Designation))
		b.WriteByte('\n')
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write year file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace year file: %w", err)
	}
	return nil
}
