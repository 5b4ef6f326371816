package cli

import (
	"github.com/spf13/cobra"

	"bluewave/internal/store"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the global settings",
	}

	cmd.AddCommand(newSettingsShowCommand(rootOpts))
	cmd.AddCommand(newSettingsSetCommand(rootOpts))

	return cmd
}

func newSettingsShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show the current settings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			settings := app.store.Settings()
			if rootOpts.Format == "json" {
				return app.out.Success(settings)
			}
			return app.out.Successf("currency=%s low_stock_threshold=%d critical_stock_threshold=%d",
				settings.Currency, settings.LowStockThreshold, settings.CriticalStockThreshold)
		},
	}
	return cmd
}

func newSettingsSetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		currencyCode string
		lowStock     int
		critical     int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change the currency or the stock thresholds.

Only the flags you pass are changed.

Example:
  bluewave settings set --currency EUR --low-stock 12`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()
			if _, err := app.requireSession(); err != nil {
				return err
			}

			var patch store.SettingsPatch
			if cmd.Flags().Changed("currency") {
				patch.Currency = &currencyCode
			}
			if cmd.Flags().Changed("low-stock") {
				patch.LowStockThreshold = &lowStock
			}
			if cmd.Flags().Changed("critical-stock") {
				patch.CriticalStockThreshold = &critical
			}

			settings, err := app.store.UpdateSettings(patch)
			if err != nil {
				return app.out.DomainError(err)
			}
			if rootOpts.Format == "json" {
				return app.out.Success(settings)
			}
			return app.out.Successf("Settings updated: currency=%s low=%d critical=%d",
				settings.Currency, settings.LowStockThreshold, settings.CriticalStockThreshold)
		},
	}

	cmd.Flags().StringVar(&currencyCode, "currency", "", "ISO 4217 currency code")
	cmd.Flags().IntVar(&lowStock, "low-stock", 0, "low stock threshold")
	cmd.Flags().IntVar(&critical, "critical-stock", 0, "critical stock threshold")

	return cmd
}
