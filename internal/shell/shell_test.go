package shell

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/username/seat-tracker/internal/calview"
	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/internal/stats"
	"github.com/username/seat-tracker/internal/store"
	"go.uber.org/zap"
)

func newTestShell(t *testing.T) (*Shell, *store.Store, *bytes.Buffer) {
	t.Helper()
	s, err := store.New(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}

	out := &bytes.Buffer{}
	sh := New(s, calview.New(s, false), stats.NewReporter(s), out, zap.NewNop())
	return sh, s, out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSetAndGet(t *testing.T) {
	sh, s, out := newTestShell(t)

	sh.Execute("set 2025-10-15 HOME")
	if !strings.Contains(out.String(), "Set 2025-10-15 to H - Work From Home") {
		t.Errorf("set output = %q", out.String())
	}

	got, ok, err := s.Get(date(2025, 10, 15))
	if err != nil || !ok || got != location.Home {
		t.Errorf("store state after set = (%v, %v, %v), want (HOME, true, nil)", got, ok, err)
	}

	// Auto-weekend is on in the shell.
	if got, ok, _ := s.Get(date(2025, 10, 18)); !ok || got != location.Weekend {
		t.Errorf("saturday = (%v, %v), want (WEEKEND, true)", got, ok)
	}

	out.Reset()
	sh.Execute("get 2025-10-15")
	if !strings.Contains(out.String(), "2025-10-15: H - Work From Home") {
		t.Errorf("get output = %q", out.String())
	}
}

func TestSetShortCode(t *testing.T) {
	sh, s, _ := newTestShell(t)

	sh.Execute("set 2025-10-15 v")

	if got, ok, _ := s.Get(date(2025, 10, 15)); !ok || got != location.Vacation {
		t.Errorf("Get() = (%v, %v), want (VACATION, true)", got, ok)
	}
}

func TestSetInvalidInput(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("set 15.10.2025 HOME")
	if !strings.Contains(out.String(), "Invalid date format") {
		t.Errorf("bad date output = %q", out.String())
	}

	out.Reset()
	sh.Execute("set 2025-10-15 OFFICE")
	if !strings.Contains(out.String(), "Invalid designation") {
		t.Errorf("bad designation output = %q", out.String())
	}
}

func TestOverwriteDeclined(t *testing.T) {
	sh, s, out := newTestShell(t)
	sh.confirm = func(string) bool { return false }

	sh.Execute("set 2025-10-15 HOME")
	out.Reset()
	sh.Execute("set 2025-10-15 LAB")

	if !strings.Contains(out.String(), "already set to H") {
		t.Errorf("overwrite warning missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Errorf("cancellation missing: %q", out.String())
	}
	if got, _, _ := s.Get(date(2025, 10, 15)); got != location.Home {
		t.Errorf("declined overwrite changed entry to %v", got)
	}
}

func TestOverwriteConfirmed(t *testing.T) {
	sh, s, _ := newTestShell(t)
	sh.confirm = func(string) bool { return true }

	sh.Execute("set 2025-10-15 HOME")
	sh.Execute("set 2025-10-15 LAB")

	if got, _, _ := s.Get(date(2025, 10, 15)); got != location.Lab {
		t.Errorf("confirmed overwrite: Get() = %v, want LAB", got)
	}
}

func TestForceModeSkipsPrompt(t *testing.T) {
	sh, s, _ := newTestShell(t)
	prompted := false
	sh.confirm = func(string) bool { prompted = true; return false }

	sh.Execute("set 2025-10-15 HOME")
	sh.Execute("force on")
	sh.Execute("set 2025-10-15 LAB")

	if prompted {
		t.Error("force mode still prompted for confirmation")
	}
	if got, _, _ := s.Get(date(2025, 10, 15)); got != location.Lab {
		t.Errorf("Get() = %v, want LAB", got)
	}
}

func TestForceToggle(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("force")
	if !sh.force || !strings.Contains(out.String(), "Force mode: ON") {
		t.Errorf("toggle on failed: force=%v out=%q", sh.force, out.String())
	}

	out.Reset()
	sh.Execute("force")
	if sh.force || !strings.Contains(out.String(), "Force mode: OFF") {
		t.Errorf("toggle off failed: force=%v out=%q", sh.force, out.String())
	}

	sh.Execute("force on")
	if !sh.force {
		t.Error("force on failed")
	}
	sh.Execute("force off")
	if sh.force {
		t.Error("force off failed")
	}
}

func TestDelete(t *testing.T) {
	sh, s, out := newTestShell(t)
	sh.confirm = func(string) bool { return true }

	sh.Execute("delete 2025-10-15")
	if !strings.Contains(out.String(), "No entry found for 2025-10-15") {
		t.Errorf("delete on untracked date output = %q", out.String())
	}

	sh.Execute("set 2025-10-15 HOME")
	out.Reset()
	sh.Execute("delete 2025-10-15")
	if !strings.Contains(out.String(), "Deleted entry for 2025-10-15") {
		t.Errorf("delete output = %q", out.String())
	}
	if _, ok, _ := s.Get(date(2025, 10, 15)); ok {
		t.Error("entry still present after delete")
	}
}

func TestValidateCommand(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("set 2025-10-15 HOME")
	out.Reset()
	sh.Execute("validate 2025")

	if !strings.Contains(out.String(), "Validation passed: No errors found in 2025.log") {
		t.Errorf("validate output = %q", out.String())
	}
}

func TestStatsCommand(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("stats")
	if !strings.Contains(out.String(), "Work Location Statistics (30 days)") {
		t.Errorf("stats output = %q", out.String())
	}

	out.Reset()
	sh.Execute("stats bogus")
	if !strings.Contains(out.String(), "Invalid period 'bogus'") {
		t.Errorf("stats error output = %q", out.String())
	}

	out.Reset()
	sh.Execute("stats all")
	if !strings.Contains(out.String(), "WORK LOCATION SUMMARY REPORT") {
		t.Errorf("stats all output = %q", out.String())
	}
}

func TestWorkSummaryCommand(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("ws 14")
	if !strings.Contains(out.String(), "Work Days Summary") {
		t.Errorf("work summary output = %q", out.String())
	}
}

func TestCalendarCommand(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("cal 2025-10")
	if !strings.Contains(out.String(), "October 2025") {
		t.Errorf("calendar output = %q", out.String())
	}

	out.Reset()
	sh.Execute("cal 2025-13")
	if !strings.Contains(out.String(), "invalid format") {
		t.Errorf("calendar error output = %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Execute("frobnicate")
	if !strings.Contains(out.String(), "Unknown command: frobnicate") {
		t.Errorf("unknown command output = %q", out.String())
	}
}

func TestQuit(t *testing.T) {
	sh, _, _ := newTestShell(t)
	sh.running = true

	sh.Execute("quit")
	if sh.running {
		t.Error("quit did not stop the session")
	}
}
