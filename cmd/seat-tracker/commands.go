package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/seat-tracker/internal/location"
	"github.com/username/seat-tracker/internal/store"
	"github.com/username/seat-tracker/pkg/dateutil"
)

// parseDateArg parses an optional date argument, defaulting to today.
func parseDateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return dateutil.Today(), nil
	}
	return dateutil.ParseDate(args[0])
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Print(question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// setDesignation records a designation for a date, prompting before an
// overwrite unless --force was given.
func setDesignation(date time.Time, d location.Designation) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if date.After(dateutil.Today()) {
		fmt.Printf("Warning: Setting designation for future date %s\n", dateutil.FormatDate(date))
	}

	opts := store.SetOptions{AutoWeekend: true, Force: force}
	err = app.store.Set(date, d, opts)

	var conflict *store.OverwriteError
	if errors.As(err, &conflict) {
		fmt.Printf("Warning: %s already set to %s - %s\n",
			dateutil.FormatDate(date), conflict.Existing.Code(), conflict.Existing.Description())
		if !confirm(fmt.Sprintf("Overwrite with %s - %s? [y/N]: ", d.Code(), d.Description())) {
			fmt.Println("Cancelled.")
			return nil
		}
		opts.Force = true
		err = app.store.Set(date, d, opts)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Set %s to %s - %s\n", dateutil.FormatDate(date), d.Code(), d.Description())
	return nil
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <date> <designation>",
		Short: "Set the designation for a date",
		Long:  "Set the designation for a date. Accepts full names (HOME) or short codes (H), case-insensitively.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}
			d, err := location.Parse(args[1])
			if err != nil {
				return fmt.Errorf("%w\nvalid designations: H=Home, L=Lab, T=Travel, W=Weekend, V=Vacation, X=Holiday, O=Other", err)
			}
			return setDesignation(date, d)
		},
	}
}

// designationShortcuts builds one subcommand per designation, each
// taking an optional date (default today), e.g. `seat-tracker home` or
// `seat-tracker lab 2025-10-15`.
func designationShortcuts() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(location.All))
	for _, d := range location.All {
		d := d
		cmds = append(cmds, &cobra.Command{
			Use:   fmt.Sprintf("%s [date]", strings.ToLower(d.Name())),
			Short: fmt.Sprintf("Set a date to %s (%s)", d.Name(), d.Description()),
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				date, err := parseDateArg(args)
				if err != nil {
					return err
				}
				return setDesignation(date, d)
			},
		})
	}
	return cmds
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [date]",
		Short: "Show the designation for a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			d, ok, err := app.store.Get(date)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("%s: No designation set (weekday default would be %s)\n",
					dateutil.FormatDate(date), location.DefaultFor(date).Name())
				return nil
			}
			fmt.Printf("%s: %s - %s\n", dateutil.FormatDate(date), d.Code(), d.Description())
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the designation for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			existing, ok, err := app.store.Get(date)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no entry found for %s", dateutil.FormatDate(date))
			}

			if !force {
				fmt.Printf("Found entry: %s -> %s - %s\n",
					dateutil.FormatDate(date), existing.Code(), existing.Description())
				if !confirm("Delete this entry? [y/N]: ") {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := app.store.Delete(date); err != nil {
				return err
			}
			fmt.Printf("Deleted entry for %s\n", dateutil.FormatDate(date))
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [year]",
		Short: "Validate a year's data file (default: current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := dateutil.Today().Year()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				year = n
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			fmt.Printf("Validating data for %d...\n", year)
			defects, err := app.store.Validate(year)
			if err != nil {
				return err
			}

			if len(defects) == 0 {
				fmt.Printf("Validation passed: No errors found in %d.log\n", year)
				return nil
			}

			fmt.Printf("Validation failed: Found %d error(s)\n\n", len(defects))
			for _, d := range defects {
				fmt.Printf("  - %s\n", d)
			}
			return fmt.Errorf("%d validation error(s) in %d.log", len(defects), year)
		},
	}
}
