package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/internal/store"
	"go.uber.org/zap"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestReporter(t *testing.T) (*Reporter, *store.Store) {
	t.Helper()
	s, err := store.New(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	return NewReporter(s), s
}

func TestPeriod(t *testing.T) {
	r, s := newTestReporter(t)

	if err := s.Set(date(2025, 10, 14), location.Home, store.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(date(2025, 10, 15), location.Lab, store.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	report, err := r.Period(date(2025, 10, 13), date(2025, 10, 16))
	if err != nil {
		t.Fatalf("Period() error = %v", err)
	}

	if report.CalendarDays != 4 {
		t.Errorf("CalendarDays = %d, want 4", report.CalendarDays)
	}
	if report.TrackedDays != 2 {
		t.Errorf("TrackedDays = %d, want 2", report.TrackedDays)
	}
	if report.Counts[location.Home] != 1 || report.Counts[location.Lab] != 1 {
		t.Errorf("Counts = %v, want HOME=1 LAB=1", report.Counts)
	}
	if report.Counts[location.Travel] != 0 {
		t.Errorf("Counts[TRAVEL] = %d, want 0", report.Counts[location.Travel])
	}
}

func TestPeriodCrossYear(t *testing.T) {
	r, s := newTestReporter(t)

	if err := s.Set(date(2024, 12, 30), location.Home, store.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(date(2025, 1, 2), location.Lab, store.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	report, err := r.Period(date(2024, 12, 30), date(2025, 1, 2))
	if err != nil {
		t.Fatalf("Period() error = %v", err)
	}
	if report.TrackedDays != 2 || report.CalendarDays != 4 {
		t.Errorf("TrackedDays/CalendarDays = %d/%d, want 2/4", report.TrackedDays, report.CalendarDays)
	}
}

func TestLastDays(t *testing.T) {
	r, s := newTestReporter(t)

	end := date(2025, 10, 15)
	if err := s.Set(end, location.Home, store.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	report, err := r.LastDays(30, end)
	if err != nil {
		t.Fatalf("LastDays() error = %v", err)
	}
	if !report.Start.Equal(date(2025, 9, 16)) {
		t.Errorf("Start = %v, want 2025-09-16", report.Start)
	}
	if !report.End.Equal(end) {
		t.Errorf("End = %v, want %v", report.End, end)
	}
	if report.CalendarDays != 30 {
		t.Errorf("CalendarDays = %d, want 30", report.CalendarDays)
	}

	if _, err := r.LastDays(0, end); err == nil {
		t.Error("LastDays(0) did not fail")
	}
	if _, err := r.LastDays(-5, end); err == nil {
		t.Error("LastDays(-5) did not fail")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		count, total int
		want         string
	}{
		{0, 0, "0.0%"},
		{1, 4, "25.0%"},
		{2, 3, "66.7%"},
		{3, 3, "100.0%"},
	}
	for _, tt := range tests {
		if got := Percentage(tt.count, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %q, want %q", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestFormatReportCoverageNote(t *testing.T) {
	report := &Report{
		Start:        date(2025, 10, 13),
		End:          date(2025, 10, 16),
		CalendarDays: 4,
		TrackedDays:  2,
		Counts: map[location.Designation]int{
			location.Home: 1,
			location.Lab:  1,
		},
	}

	out := FormatReport(report)

	if !strings.Contains(out, "Data Coverage: 2/4 days (50.0%)") {
		t.Errorf("report missing coverage line:\n%s", out)
	}
	if !strings.Contains(out, "(H) Work From Home") {
		t.Errorf("report missing HOME row:\n%s", out)
	}

	// HOME and LAB (count 1) must be listed before designations with 0.
	homeIdx := strings.Index(out, "(H)")
	weekendIdx := strings.Index(out, "(W)")
	if homeIdx == -1 || weekendIdx == -1 || homeIdx > weekendIdx {
		t.Errorf("breakdown not sorted by count:\n%s", out)
	}
}

func TestFormatWorkSummary(t *testing.T) {
	report := &Report{
		Start:        date(2025, 10, 6),
		End:          date(2025, 10, 19),
		CalendarDays: 14,
		TrackedDays:  10,
		Counts: map[location.Designation]int{
			location.Home:    3,
			location.Lab:     4,
			location.Travel:  1,
			location.Weekend: 2,
		},
	}

	out := FormatWorkSummary(report)

	if !strings.Contains(out, "Total Work Days: 8/10 (80.0% of all days)") {
		t.Errorf("summary missing work day total:\n%s", out)
	}
	if !strings.Contains(out, "Non-Work Days:  2/10 (20.0%)") {
		t.Errorf("summary missing non-work line:\n%s", out)
	}
	if !strings.Contains(out, "Lab + Travel:  5/8 (62.5%)") {
		t.Errorf("summary missing lab+travel line:\n%s", out)
	}
	if !strings.Contains(out, "Lab+Travel+Home:  8/8 (100.0%)") {
		t.Errorf("summary missing lab+travel+home line:\n%s", out)
	}
}
