package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/lapwatch/internal/cli/formatter"
	"github.com/alexanderramin/lapwatch/internal/config"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect, export, import and validate stopwatch settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsExportCmd(app),
		newSettingsValidateCmd(app),
		newSettingsImportCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Settings"))
			fmt.Fprintln(out, formatter.FormatSettings(app.Settings))
			if p := app.Config.SettingsPath; p != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Dim("File: "+p))
			}
			return nil
		},
	}
}

func newSettingsExportCmd(app *App) *cobra.Command {
	var dir string
	format := formatValue{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the effective settings to the export directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := app.Config.ExportFormat
			if cmd.Flags().Changed("format") {
				f = format.value
			}
			if dir == "" {
				dir = app.Config.ExportDir
			}
			doc := exporter.ExportSettings(app.Settings, app.now())
			path, err := exporter.WriteFile(dir, exporter.SettingsFileName(f), doc, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Exported to "+path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: LAPWATCH_EXPORT_DIR)")
	cmd.Flags().Var(&format, "format", "export format: json or yaml")
	return cmd
}

func newSettingsValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a settings file or settings export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			s, err := config.ParseSettings(data, domain.DefaultSettings())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("✔ valid"))
			fmt.Fprintln(out, formatter.FormatSettings(s))
			return nil
		},
	}
}

func newSettingsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the settings file with a settings export",
		Long: `Read a settings export (JSON or YAML, chosen by extension) and write
its settings to the file named by LAPWATCH_SETTINGS. A running stopwatch
watching that file picks the change up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := app.Config.SettingsPath
			if target == "" {
				return errors.New("no settings file configured (set LAPWATCH_SETTINGS)")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			doc, err := exporter.DecodeSettings(bytes.NewReader(data), exporter.FormatForPath(args[0]))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			s, err := exporter.ImportSettings(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			path, err := exporter.WriteFile(filepath.Dir(target), filepath.Base(target),
				exporter.ExportSettings(s, app.now()), exporter.FormatForPath(target))
			if err != nil {
				return err
			}
			app.Settings = s

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Imported into "+path)
			fmt.Fprintln(out, formatter.FormatSettings(s))
			return nil
		},
	}
}
