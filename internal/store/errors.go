package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/pkg/dateutil"
)

// ErrNotFound is returned by Delete when the date has no entry.
var ErrNotFound = errors.New("no entry for date")

// ErrOverwriteConflict marks an OverwriteError for errors.Is checks.
var ErrOverwriteConflict = errors.New("entry already exists")

// OverwriteError reports that Set would replace an existing entry and
// force was not given. The caller decides whether to retry with force.
type OverwriteError struct {
	Date     time.Time
	Existing location.Designation
}

func (e *OverwriteError) Error() string {
	return fmt.Sprintf("%s already set to %s - %s",
		dateutil.FormatDate(e.Date), e.Existing.Code(), e.Existing.Description())
}

func (e *OverwriteError) Is(target error) bool {
	return target == ErrOverwriteConflict
}

// DefectKind classifies a validation finding in a year file.
type DefectKind int

const (
	DefectMalformedLine DefectKind = iota + 1
	DefectUnknownDesignation
	DefectWeekMismatch
	DefectDuplicateDate
	DefectWrongYear
)

func (k DefectKind) String() string {
	switch k {
	case DefectMalformedLine:
		return "malformed line"
	case DefectUnknownDesignation:
		return "unknown designation"
	case DefectWeekMismatch:
		return "week number mismatch"
	case DefectDuplicateDate:
		return "duplicate date"
	case DefectWrongYear:
		return "wrong year"
	default:
		return "unknown defect"
	}
}

// Defect describes one validation finding. Defects are collected, never
// returned as errors: a damaged line must not make the rest of the file
// unreadable.
type Defect struct {
	Line   int
	Kind   DefectKind
	Detail string
}

func (d Defect) String() string {
	return fmt.Sprintf("Line %d: %s - %s", d.Line, d.Kind, d.Detail)
}
