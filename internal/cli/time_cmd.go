package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alexanderramin/lapwatch/internal/cli/formatter"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/alexanderramin/lapwatch/internal/service"
	"github.com/alexanderramin/lapwatch/internal/timefmt"
	"github.com/spf13/cobra"
)

func newTimeCmd(app *App) *cobra.Command {
	var export bool
	format := formatValue{}

	cmd := &cobra.Command{
		Use:   "time",
		Short: "Run a stopwatch driven by line commands on stdin",
		Long: `Start a stopwatch immediately and read one command per line:

  (empty line)  record a lap
  s             start or stop
  r             reset (while stopped)
  q             finish

End of input also finishes. The session summary is printed at the end
and, with --export, written to the export directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := app.Config.ExportFormat
			if cmd.Flags().Changed("format") {
				f = format.value
			}
			return runTime(cmd.Context(), app, timeOptions{export: export, format: f})
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "write the session export when finished")
	cmd.Flags().Var(&format, "format", "export format: json or yaml")
	return cmd
}

type timeOptions struct {
	export bool
	format exporter.Format
	ticks  service.TickSource
}

// lockedWriter serializes writes from the runner goroutine and the input
// loop.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func runTime(ctx context.Context, app *App, opts timeOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := &lockedWriter{w: app.stdout()}
	sw := app.newStopwatch()
	sw.Subscribe(bellListener(app.Bell, sw.Settings))
	sw.Subscribe(lapPrinter(out, sw.Settings))

	runnerOpts := []service.RunnerOption{service.WithRunnerLogger(app.Logger)}
	if opts.ticks != nil {
		runnerOpts = append(runnerOpts, service.WithTickSource(opts.ticks))
	}
	runner := service.NewRunner(sw, runnerOpts...)
	go func() { _ = runner.Run(ctx) }()

	if app.WatchSettings != nil && app.Config.WatchSettings {
		go func() {
			err := app.WatchSettings(ctx, func(s domain.Settings) {
				_ = runner.ApplySettings(ctx, app.withOverrides(s))
			})
			if err != nil {
				app.Logger.Warn().Err(err).Msg("settings watcher stopped")
			}
		}()
	}

	if err := runner.Do(ctx, service.CommandStart); err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.Dim("Running. Enter = lap, s = start/stop, r = reset, q = finish."))

	scanner := bufio.NewScanner(app.stdin())
read:
	for scanner.Scan() {
		var cmd service.Command
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "l":
			cmd = service.CommandLap
		case "s":
			cmd = service.CommandToggle
		case "r":
			cmd = service.CommandReset
		case "q":
			break read
		default:
			fmt.Fprintln(out, formatter.Dim("Unknown command. Enter = lap, s = start/stop, r = reset, q = finish."))
			continue
		}
		if err := runner.Do(ctx, cmd); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	if err := runner.Do(ctx, service.CommandStop); err != nil {
		return err
	}
	var (
		state    domain.SessionState
		settings domain.Settings
	)
	if err := runner.Inspect(ctx, func(sw *service.Stopwatch) {
		state = sw.Snapshot()
		settings = sw.Settings()
	}); err != nil {
		return err
	}
	cancel()
	<-runner.Done()

	now := app.now()
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatSessionReport(state, settings.Precision, now))

	if !opts.export {
		return nil
	}
	doc, err := exporter.ExportSession(state, settings, now)
	if errors.Is(err, exporter.ErrNothingToExport) {
		fmt.Fprintln(out, formatter.Dim("Nothing to export."))
		return nil
	}
	if err != nil {
		return err
	}
	path, err := exporter.WriteFile(app.Config.ExportDir, exporter.SessionFileName(now, opts.format), doc, opts.format)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Exported to "+path)
	return nil
}

// lapPrinter prints every recorded lap as it happens.
func lapPrinter(w io.Writer, settings func() domain.Settings) service.Listener {
	return func(ev service.Event) {
		if ev.Kind != service.EventLapAdded || ev.Lap == nil {
			return
		}
		p := settings().Precision
		label := fmt.Sprintf("Lap %d", ev.Lap.Number)
		if ev.AutoLap {
			label += " (auto)"
		}
		fmt.Fprintf(w, "%s  %s  %s\n", label, timefmt.Clock(ev.Lap.DurationMs, p), formatter.Dim(timefmt.Clock(ev.Lap.CumulativeMs, p)))
	}
}
