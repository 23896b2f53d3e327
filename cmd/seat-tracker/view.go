package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/seat-tracker/internal/shell"
	"github.com/username/seat-tracker/internal/stats"
	"github.com/username/seat-tracker/pkg/dateutil"
)

func calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY|YYYY-MM]",
		Short: "Show a calendar (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			var out string
			if len(args) == 0 {
				out, err = app.view.CurrentMonthWithLegend()
			} else {
				out, err = renderCalendarArg(app, args[0])
			}
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}
}

func renderCalendarArg(app *app, arg string) (string, error) {
	if strings.Contains(arg, "-") {
		parts := strings.SplitN(arg, "-", 2)
		year, errY := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		if errY != nil || errM != nil || month < 1 || month > 12 {
			return "", fmt.Errorf("invalid format %q: use YYYY (e.g. 2024) or YYYY-MM (e.g. 2025-10)", arg)
		}
		return app.view.MonthWithLegend(year, time.Month(month))
	}

	year, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("invalid format %q: use YYYY (e.g. 2024) or YYYY-MM (e.g. 2025-10)", arg)
	}
	return app.view.YearWithLegend(year)
}

func statsCmd() *cobra.Command {
	var withCalendar bool

	cmd := &cobra.Command{
		Use:   "stats [30|90|365|all|<days>]",
		Short: "Show statistics for a period (default: 30 days)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			period := "30"
			if len(args) == 1 {
				period = args[0]
			}

			if strings.EqualFold(period, "all") {
				if withCalendar {
					for _, days := range []int{30, 90, 365} {
						if err := printPeriodCalendar(app, days); err != nil {
							return err
						}
					}
				}
				out, err := app.reporter.FormatSummaryReport(dateutil.Today())
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			days, err := strconv.Atoi(period)
			if err != nil || days <= 0 {
				return fmt.Errorf("invalid period %q: use 30, 90, 365, all, or any number of days", period)
			}

			report, err := app.reporter.LastDays(days, dateutil.Today())
			if err != nil {
				return err
			}

			if withCalendar {
				grid, err := app.view.DateRangeWithLegend(report.Start, report.End)
				if err != nil {
					return err
				}
				fmt.Println(grid)
				fmt.Println("\n" + strings.Repeat("=", 50))
			}

			fmt.Println(stats.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCalendar, "with-calendar", false, "Show calendar view with the statistics")
	return cmd
}

func printPeriodCalendar(app *app, days int) error {
	report, err := app.reporter.LastDays(days, dateutil.Today())
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("%d-Day Period Calendar:\n", days)
	fmt.Println(strings.Repeat("=", 50))

	grid, err := app.view.DateRangeWithLegend(report.Start, report.End)
	if err != nil {
		return err
	}
	fmt.Println(grid)
	fmt.Println()
	return nil
}

func summaryCmd() *cobra.Command {
	var withCalendar bool

	cmd := &cobra.Command{
		Use:   "summary [days]",
		Short: "Show a work days summary (default: 30 days)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := 30
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid number of days %q", args[0])
				}
				days = n
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			report, err := app.reporter.LastDays(days, dateutil.Today())
			if err != nil {
				return err
			}

			if withCalendar {
				grid, err := app.view.DateRangeWithLegend(report.Start, report.End)
				if err != nil {
					return err
				}
				fmt.Println(grid)
				fmt.Println("\n" + strings.Repeat("=", 50))
			}

			fmt.Println(stats.FormatWorkSummary(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCalendar, "with-calendar", false, "Show calendar view with the summary")
	return cmd
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"interactive"},
		Short:   "Start interactive mode",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			sh := shell.New(app.store, app.view, app.reporter, os.Stdout, logger)
			return sh.Run()
		},
	}
}
