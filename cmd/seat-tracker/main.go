package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/seat-tracker/internal/calview"
	"github.com/username/seat-tracker/internal/config"
	"github.com/username/seat-tracker/internal/stats"
	"github.com/username/seat-tracker/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

const version = "1.0.1"

var (
	configPath string
	dataDir    string
	force      bool
	noColor    bool
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "seat-tracker",
		Short:   "Track daily work location designations",
		Long:    "Track daily work location designations (home, lab, travel, ...) in per-year flat text files, and view them as calendars or statistics.",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initConsoleLogger() // Fallback to console
				}
			} else {
				initConsoleLogger()
			}
		},
		// Bare invocation shows the current month.
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			grid, err := app.view.CurrentMonthWithLegend()
			if err != nil {
				return err
			}
			fmt.Println(grid)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: config.yaml in . or ~/.seat-tracker)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for data files (default: SEAT_TRACKER_DATA_DIR env var or ~/.seat-tracker/data)")
	rootCmd.PersistentFlags().BoolVarP(&force, "force", "f", false, "Force overwrite without prompting")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(designationShortcuts()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired components behind every subcommand.
type app struct {
	cfg      *config.Config
	store    *store.Store
	view     *calview.Renderer
	reporter *stats.Reporter
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flag beats env var beats config default.
	dir := cfg.Data.Dir
	if dataDir != "" {
		dir = dataDir
	}

	st, err := store.New(dir, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		store:    st,
		view:     calview.New(st, useColor(cfg.Output.Color)),
		reporter: stats.NewReporter(st),
	}, nil
}

func useColor(mode string) bool {
	if noColor {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// initConsoleLogger sets up a stderr logger for warnings and worse,
// keeping normal CLI output clean.
func initConsoleLogger() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Lumberjack handles log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
