// Package store implements the work location storage engine: a
// date-keyed designation store persisted in one flat text file per
// calendar year.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// Store manages work location entries across year files in a single
// data directory. Year files are loaded lazily and cached for the
// lifetime of the Store; every mutation rewrites the owning file(s).
type Store struct {
	dataDir string
	logger  *zap.Logger
	years   map[int]*YearStore
}

// New creates a store rooted at dataDir, creating the directory if it
// does not exist yet.
func New(dataDir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		dataDir: dataDir,
		logger:  logger,
		years:   make(map[int]*YearStore),
	}, nil
}

// DataDir returns the directory holding the year files.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) yearFile(year int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%d.log", year))
}

// LoadYear returns the (lazily loaded, cached) entry set for a year.
// Damaged lines in the file are collected as defects on the returned
// YearStore, never turned into errors.
func (s *Store) LoadYear(year int) (*YearStore, error) {
	if ys, ok := s.years[year]; ok {
		return ys, nil
	}

	ys, err := loadYearFile(s.yearFile(year), year)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Year file loaded",
		zap.Int("year", year),
		zap.Int("entries", ys.Len()),
		zap.Int("defects", len(ys.defects)))

	s.years[year] = ys
	return ys, nil
}

// Get returns the designation stored for a date, if any. A miss is a
// normal "no data" result, not an error.
func (s *Store) Get(date time.Time) (location.Designation, bool, error) {
	date = dateutil.Date(date)
	ys, err := s.LoadYear(date.Year())
	if err != nil {
		return 0, false, err
	}
	d, ok := ys.Get(date)
	return d, ok, nil
}

// SetOptions control the write-time behavior of Set.
type SetOptions struct {
	// AutoWeekend fills in WEEKEND entries for the Saturday and Sunday
	// of the week being written, unless they are already tracked.
	AutoWeekend bool
	// Force overwrites an existing entry instead of returning an
	// OverwriteError.
	Force bool
}

// Set records a designation for a date and persists the owning year
// file(s). When the date is already tracked and Force is not set, Set
// returns an *OverwriteError and writes nothing.
func (s *Store) Set(date time.Time, d location.Designation, opts SetOptions) error {
	date = dateutil.Date(date)
	ys, err := s.LoadYear(date.Year())
	if err != nil {
		return err
	}

	if existing, ok := ys.Get(date); ok && !opts.Force {
		return &OverwriteError{Date: date, Existing: existing}
	}

	ys.days[date] = d
	dirty := map[int]bool{date.Year(): true}

	// Auto-populated weekend entries never replace existing ones,
	// regardless of Force. The weekend may fall in the next calendar
	// year; both year files are persisted in the same operation.
	if opts.AutoWeekend && d != location.Weekend {
		saturday, sunday := dateutil.WeekendOf(date)
		for _, day := range []time.Time{saturday, sunday} {
			wys, err := s.LoadYear(day.Year())
			if err != nil {
				return err
			}
			if _, ok := wys.Get(day); ok {
				continue
			}
			wys.days[day] = location.Weekend
			dirty[day.Year()] = true
		}
	}

	years := make([]int, 0, len(dirty))
	for year := range dirty {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		if err := s.saveYear(year); err != nil {
			return err
		}
	}

	s.logger.Info("Designation set",
		zap.String("date", dateutil.FormatDate(date)),
		zap.String("designation", d.Name()),
		zap.Bool("auto_weekend", opts.AutoWeekend),
		zap.Bool("force", opts.Force))

	return nil
}

// Delete removes the entry for a date and persists the year file.
// Returns ErrNotFound when the date is untracked.
func (s *Store) Delete(date time.Time) error {
	date = dateutil.Date(date)
	ys, err := s.LoadYear(date.Year())
	if err != nil {
		return err
	}

	if _, ok := ys.Get(date); !ok {
		return fmt.Errorf("%s: %w", dateutil.FormatDate(date), ErrNotFound)
	}

	delete(ys.days, date)
	if err := s.saveYear(date.Year()); err != nil {
		return err
	}

	s.logger.Info("Designation deleted", zap.String("date", dateutil.FormatDate(date)))
	return nil
}

// Range returns every tracked entry in the inclusive date range,
// ordered by date, merging as many year files as the range spans.
// Untracked dates are omitted, never synthesized.
func (s *Store) Range(start, end time.Time) ([]Entry, error) {
	start, end = dateutil.Date(start), dateutil.Date(end)
	if end.Before(start) {
		return nil, fmt.Errorf("invalid range: %s is after %s",
			dateutil.FormatDate(start), dateutil.FormatDate(end))
	}

	var entries []Entry
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		ys, err := s.LoadYear(date.Year())
		if err != nil {
			return nil, err
		}
		if d, ok := ys.Get(date); ok {
			entries = append(entries, Entry{Date: date, Week: dateutil.WeekNumber(date), Designation: d})
		}
	}
	return entries, nil
}

// Validate re-reads a year file from disk and reports every defect:
// malformed lines, unknown designations, week-number mismatches,
// duplicate dates, and dates filed under the wrong year. The file is
// not mutated.
func (s *Store) Validate(year int) ([]Defect, error) {
	defects, err := scanYearFile(s.yearFile(year), year, func(int, Entry) {})
	if err != nil {
		return nil, err
	}
	return defects, nil
}

func (s *Store) saveYear(year int) error {
	ys, ok := s.years[year]
	if !ok {
		return fmt.Errorf("year %d not loaded", year)
	}

	if err := saveYearFile(s.yearFile(year), ys); err != nil {
		return err
	}

	s.logger.Debug("Year file saved",
		zap.Int("year", year),
		zap.Int("entries", ys.Len()))
	return nil
}
