package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/lapwatch/internal/cli"
	"github.com/alexanderramin/lapwatch/internal/config"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/logging"
	"github.com/alexanderramin/lapwatch/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// The TUI owns the terminal, so it only logs to a file.
	logger, closeLog, err := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: !runsTUI(os.Args[1:], interactive),
	})
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Config:   cfg,
		Settings: settings,
		Logger:   logger,
		NewStopwatch: func(s domain.Settings) *service.Stopwatch {
			return service.NewStopwatch(
				service.WithSettings(s),
				service.WithObserver(service.NewLogUseCaseObserver(logger)),
			)
		},
		Clipboard: clipboard.WriteAll,
		IsInteractive: func() bool {
			return interactive
		},
		HasDarkBackground: lipgloss.HasDarkBackground,
		Stdin:             os.Stdin,
		Stdout:            os.Stdout,
		Stderr:            os.Stderr,
		Bell:              os.Stderr,
	}
	if cfg.SettingsPath != "" {
		app.WatchSettings = func(ctx context.Context, onChange func(domain.Settings)) error {
			return config.WatchSettings(ctx, cfg.SettingsPath, logger, onChange)
		}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// runsTUI reports whether args select the interactive stopwatch.
func runsTUI(args []string, interactive bool) bool {
	if len(args) == 0 {
		return interactive
	}
	return args[0] == "tui"
}
