package cli

import (
	"fmt"

	"github.com/alexanderramin/lapwatch/internal/cli/formatter"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Show laps and statistics for an exported session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, state, settings, err := importSessionFile(args[0])
			if err != nil {
				return err
			}
			precision := settings.Precision
			if f := cmd.Flags().Lookup("precision"); f != nil && f.Changed {
				precision = app.Settings.Precision
			}
			// The session ended when it was exported.
			asOf := doc.ExportDate
			if asOf.IsZero() {
				asOf = app.now()
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionReport(state, precision, asOf))
			return nil
		},
	}
}

func newShareCmd(app *App) *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:   "share FILE",
		Short: "Print the share text for an exported session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, state, _, err := importSessionFile(args[0])
			if err != nil {
				return err
			}
			text, err := exporter.ShareText(state)
			if err != nil {
				return err
			}
			if copyText {
				if app.Clipboard == nil {
					return fmt.Errorf("clipboard is not available")
				}
				if err := app.Clipboard(text); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Copied to clipboard."))
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "also copy the text to the clipboard")
	return cmd
}

func importSessionFile(path string) (*exporter.SessionDocument, domain.SessionState, domain.Settings, error) {
	doc, err := exporter.LoadSessionFile(path)
	if err != nil {
		return nil, domain.SessionState{}, domain.Settings{}, fmt.Errorf("reading %s: %w", path, err)
	}
	state, settings, err := exporter.ImportSession(doc)
	if err != nil {
		return nil, domain.SessionState{}, domain.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, state, settings, nil
}
