// Package shell implements the interactive mode: a readline REPL over
// the store, calendar renderer and statistics reporter.
package shell

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/username/seat-tracker/internal/calview"
	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/internal/stats"
	"github.com/username/seat-tracker/internal/store"
	"github.com/username/seat-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

const prompt = "tracker> "

// Shell drives an interactive session. All persistence goes through the
// store on each command; the only session state is the force toggle.
type Shell struct {
	store    *store.Store
	view     *calview.Renderer
	reporter *stats.Reporter
	logger   *zap.Logger

	out     io.Writer
	force   bool
	running bool

	// confirm asks a yes/no question. Replaced in tests; the default
	// reads a line from the readline instance.
	confirm func(question string) bool
}

// New creates a shell writing its output to out.
func New(s *store.Store, view *calview.Renderer, reporter *stats.Reporter, out io.Writer, logger *zap.Logger) *Shell {
	sh := &Shell{
		store:    s,
		view:     view,
		reporter: reporter,
		logger:   logger,
		out:      out,
		confirm:  func(string) bool { return false },
	}
	return sh
}

func (s *Shell) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("calendar"),
		readline.PcItem("set"),
		readline.PcItem("get"),
		readline.PcItem("delete"),
		readline.PcItem("stats",
			readline.PcItem("30"),
			readline.PcItem("90"),
			readline.PcItem("365"),
			readline.PcItem("all"),
		),
		readline.PcItem("work-summary"),
		readline.PcItem("validate"),
		readline.PcItem("force",
			readline.PcItem("on"),
			readline.PcItem("off"),
		),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Run reads and executes commands until quit or EOF. Ctrl-C interrupts
// the current line but keeps the session alive.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     filepath.Join(s.store.DataDir(), ".tracker_history"),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	s.confirm = func(question string) bool {
		rl.SetPrompt(question)
		defer rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	s.printHelp()
	if grid, err := s.view.CurrentMonthWithLegend(); err == nil {
		s.println(grid)
		s.println()
	}

	s.running = true
	for s.running {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.println("\nInterrupted. Type 'quit' to exit.")
			continue
		}
		if err == io.EOF {
			s.println("\nExiting...")
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}
		s.Execute(line)
	}

	return nil
}

// Execute runs one command line.
func (s *Shell) Execute(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	s.logger.Debug("Executing shell command",
		zap.String("command", command),
		zap.Strings("args", args))

	switch command {
	case "calendar", "cal":
		s.cmdCalendar(args)
	case "set":
		s.cmdSet(args)
	case "get":
		s.cmdGet(args)
	case "delete", "del":
		s.cmdDelete(args)
	case "stats":
		s.cmdStats(args)
	case "work-summary", "ws":
		s.cmdWorkSummary(args)
	case "validate", "val":
		s.cmdValidate(args)
	case "force":
		s.cmdForce(args)
	case "help", "h":
		s.printHelp()
	case "quit", "exit", "q":
		s.println("\nExiting interactive mode...")
		s.running = false
	default:
		s.printf("Unknown command: %s\n", command)
		s.println("Type 'help' for available commands.")
	}
}

func (s *Shell) printHelp() {
	s.println("\n" + strings.Repeat("=", 60))
	s.println("Work Location Tracker - Interactive Mode")
	s.println(strings.Repeat("=", 60))
	s.println()
	s.println("Commands:")
	s.println("  calendar [YYYY|YYYY-MM] - Show calendar for current, year, or month")
	s.println("  set <date> <des>    - Set designation for a date (YYYY-MM-DD)")
	s.println("  get <date>          - Get designation for a date (YYYY-MM-DD)")
	s.println("  delete <date>       - Delete designation for a date (YYYY-MM-DD)")
	s.println("  stats [days]        - Show statistics (default: 30; options: 30, 90, 365, all, or any number)")
	s.println("  work-summary [days] - Show work days summary (default: 30)")
	s.println("  validate [year]     - Validate data file (default: current year)")
	s.println("  force [on|off]      - Toggle force mode (skip overwrite prompts)")
	s.println("  help                - Show this help message")
	s.println("  quit                - Exit interactive mode")
	s.println()
	status := "OFF"
	if s.force {
		status = "ON"
	}
	s.printf("Force mode: %s\n\n", status)
}

func (s *Shell) cmdCalendar(args []string) {
	switch len(args) {
	case 0:
		grid, err := s.view.CurrentMonthWithLegend()
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		s.println()
		s.println(grid)
	case 1:
		grid, err := renderCalendarArg(s.view, args[0])
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		s.println()
		s.println(grid)
	default:
		s.println("Usage: calendar [YYYY|YYYY-MM]")
	}
}

// renderCalendarArg renders a YYYY or YYYY-MM calendar argument.
func renderCalendarArg(view *calview.Renderer, arg string) (string, error) {
	if strings.Contains(arg, "-") {
		parts := strings.SplitN(arg, "-", 2)
		year, errY := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		if errY != nil || errM != nil || month < 1 || month > 12 {
			return "", fmt.Errorf("invalid format %q: use YYYY (e.g. 2024) or YYYY-MM (e.g. 2025-10)", arg)
		}
		return view.MonthWithLegend(year, time.Month(month))
	}

	year, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("invalid format %q: use YYYY (e.g. 2024) or YYYY-MM (e.g. 2025-10)", arg)
	}
	return view.YearWithLegend(year)
}

func (s *Shell) cmdSet(args []string) {
	if len(args) != 2 {
		s.println("Usage: set <date> <designation>")
		s.println("Example: set 2025-10-15 HOME")
		s.println("Short codes also work: set 2025-10-15 H")
		return
	}

	date, err := dateutil.ParseDate(args[0])
	if err != nil {
		s.printf("Error: Invalid date format '%s'. Use YYYY-MM-DD.\n", args[0])
		return
	}

	designation, err := location.Parse(args[1])
	if err != nil {
		s.printf("Error: Invalid designation '%s'.\n", args[1])
		s.println("Valid designations:")
		for _, d := range location.All {
			s.printf("  %s (%s) - %s\n", d.Name(), d.Code(), d.Description())
		}
		return
	}

	if date.After(dateutil.Today()) {
		s.printf("Warning: Setting designation for future date %s\n", dateutil.FormatDate(date))
	}

	opts := store.SetOptions{AutoWeekend: true, Force: s.force}
	err = s.store.Set(date, designation, opts)

	var conflict *store.OverwriteError
	if errors.As(err, &conflict) {
		s.printf("Warning: %s already set to %s - %s\n",
			dateutil.FormatDate(date), conflict.Existing.Code(), conflict.Existing.Description())
		question := fmt.Sprintf("Overwrite with %s - %s? [y/N]: ", designation.Code(), designation.Description())
		if !s.confirm(question) {
			s.println("Cancelled.")
			return
		}
		opts.Force = true
		err = s.store.Set(date, designation, opts)
	}
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}

	s.printf("Set %s to %s - %s\n", dateutil.FormatDate(date), designation.Code(), designation.Description())
}

func (s *Shell) cmdGet(args []string) {
	if len(args) != 1 {
		s.println("Usage: get <date>")
		s.println("Example: get 2025-10-15")
		return
	}

	date, err := dateutil.ParseDate(args[0])
	if err != nil {
		s.printf("Error: Invalid date format '%s'. Use YYYY-MM-DD.\n", args[0])
		return
	}

	designation, ok, err := s.store.Get(date)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if !ok {
		s.printf("%s: No designation set (weekday default would be %s)\n",
			dateutil.FormatDate(date), location.DefaultFor(date).Name())
		return
	}
	s.printf("%s: %s - %s\n", dateutil.FormatDate(date), designation.Code(), designation.Description())
}

func (s *Shell) cmdDelete(args []string) {
	if len(args) != 1 {
		s.println("Usage: delete <date>")
		return
	}

	date, err := dateutil.ParseDate(args[0])
	if err != nil {
		s.printf("Error: Invalid date format '%s'. Use YYYY-MM-DD.\n", args[0])
		return
	}

	existing, ok, err := s.store.Get(date)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if !ok {
		s.printf("Error: No entry found for %s\n", dateutil.FormatDate(date))
		return
	}

	if !s.force {
		s.printf("Found entry: %s -> %s - %s\n",
			dateutil.FormatDate(date), existing.Code(), existing.Description())
		if !s.confirm("Delete this entry? [y/N]: ") {
			s.println("Cancelled.")
			return
		}
	}

	if err := s.store.Delete(date); err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.printf("Deleted entry for %s\n", dateutil.FormatDate(date))
}

func (s *Shell) cmdStats(args []string) {
	if len(args) > 1 {
		s.println("Usage: stats [30|90|365|all|<days>]")
		return
	}

	period := "30"
	if len(args) == 1 {
		period = args[0]
	}

	if strings.EqualFold(period, "all") {
		out, err := s.reporter.FormatSummaryReport(dateutil.Today())
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		s.println()
		s.println(out)
		return
	}

	days, err := strconv.Atoi(period)
	if err != nil || days <= 0 {
		s.printf("Error: Invalid period '%s'. Use 30, 90, 365, all, or any number of days.\n", period)
		return
	}

	report, err := s.reporter.LastDays(days, dateutil.Today())
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.println()
	s.println(stats.FormatReport(report))
}

func (s *Shell) cmdWorkSummary(args []string) {
	days := 30
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			s.println("Error: Days must be a number")
			return
		}
		days = n
	}

	report, err := s.reporter.LastDays(days, dateutil.Today())
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.println()
	s.println(stats.FormatWorkSummary(report))
}

func (s *Shell) cmdValidate(args []string) {
	year := dateutil.Today().Year()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			s.println("Error: Year must be a number")
			return
		}
		year = n
	}

	s.printf("\nValidating data for %d...\n", year)
	defects, err := s.store.Validate(year)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}

	if len(defects) == 0 {
		s.printf("Validation passed: No errors found in %d.log\n", year)
		return
	}

	s.printf("Validation failed: Found %d error(s)\n\n", len(defects))
	for _, d := range defects {
		s.printf("  - %s\n", d)
	}
}

func (s *Shell) cmdForce(args []string) {
	switch {
	case len(args) == 0:
		s.force = !s.force
	case strings.EqualFold(args[0], "on"):
		s.force = true
	case strings.EqualFold(args[0], "off"):
		s.force = false
	default:
		s.println("Usage: force [on|off]")
		return
	}

	if s.force {
		s.println("Force mode: ON")
		s.println("Overwrite prompts will be skipped")
	} else {
		s.println("Force mode: OFF")
		s.println("You will be prompted before overwriting existing dates")
	}
}
