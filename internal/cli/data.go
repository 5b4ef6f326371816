package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bluewave/internal/backup"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command group.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <csv|json>",
		Short: "Export the sales ledger (csv) or a full backup (json)",
		Long: `Export data.

  csv   the sales ledger, one row per sale in ledger order
  json  the full state document plus an export timestamp

Without --output the export is written to stdout.

Example:
  bluewave export csv --output sales_report.csv
  bluewave export json --output bluewave_backup.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions, kind string, cmd *cobra.Command) error {
	app, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer app.close()

	var payload []byte
	switch kind {
	case "csv":
		payload = []byte(backup.SalesCSV(app.store.Sales()))
	case "json":
		payload, err = backup.ExportJSON(app.store.State(), app.store.Clock())
		if err != nil {
			return app.out.DomainError(err)
		}
	default:
		return WrapExitError(ExitCommandError, fmt.Sprintf("unknown export kind %q (want csv or json)", kind), nil)
	}

	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write(payload)
		return err
	}
	if err := os.WriteFile(opts.Output, payload, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write export file", err)
	}
	return app.out.Successf("Exported %s to %s.", kind, opts.Output)
}

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	AssumeYes bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data from a backup document",
		Long: `Replace the entire state with a backup document.

The document is validated in full before anything is replaced; a
malformed document is rejected and the current data stays untouched.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read import file", err)
			}

			app, err := openApp(opts.RootOptions, cmd)
			if err != nil {
				return err
			}
			defer app.close()
			if _, err := app.requireSession(); err != nil {
				return err
			}

			state, err := backup.ParseImport(raw, app.store.Settings())
			if err != nil {
				return app.out.DomainError(err)
			}

			ok, err := confirm(cmd, opts.AssumeYes, "Replace all current data?")
			if err != nil {
				return err
			}
			if !ok {
				return app.out.Successf("Cancelled.")
			}

			if err := app.store.Replace(state); err != nil {
				return app.out.DomainError(err)
			}
			return app.out.Successf("Imported %d books, %d sales, %d suppliers.",
				len(state.Books), len(state.Sales), len(state.Suppliers))
		},
	}

	cmd.Flags().BoolVarP(&opts.AssumeYes, "yes", "y", false, "skip confirmation")

	return cmd
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all data to the seed dataset",
		Long: `Drop the saved data and rebuild the demo seed dataset.

This cannot be undone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			ok, err := confirm(cmd, assumeYes, "Reset all demo data? This cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				return app.out.Successf("Cancelled.")
			}

			if err := app.store.Reset(app.cfg.Settings()); err != nil {
				return app.out.DomainError(err)
			}
			return app.out.Successf("Demo data has been reset.")
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")

	return cmd
}
