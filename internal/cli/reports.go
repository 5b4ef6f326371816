package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bluewave/internal/domain"
	"bluewave/internal/report"
)

// NewReportCommand creates the report command group.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derived views over the ledger and catalog",
	}

	cmd.AddCommand(newReportDashboardCommand(rootOpts))
	cmd.AddCommand(newReportLowStockCommand(rootOpts))
	cmd.AddCommand(newReportDailyCommand(rootOpts))
	cmd.AddCommand(newReportSalesCommand(rootOpts))

	return cmd
}

func newReportDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Headline statistics plus recent sales and low stock",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			state := app.store.State()
			stats := report.Dashboard(state, app.store.Clock())
			recent := report.RecentSales(state.Sales, 5)
			low := report.LowStock(state.Books, state.Settings)
			if len(low) > 5 {
				low = low[:5]
			}

			if rootOpts.Format == "json" {
				return app.out.Success(map[string]interface{}{
					"stats":       stats,
					"recentSales": recent,
					"lowStock":    low,
				})
			}

			money := app.money()
			var b strings.Builder
			fmt.Fprintf(&b, "Books: %d   Low stock: %d   Today's sales: %s   Suppliers: %d\n\n",
				stats.TotalBooks, stats.LowStockCount, money.Format(stats.TodayTotal), stats.TotalSuppliers)

			fmt.Fprintln(&b, "Recent sales")
			for _, s := range recent {
				fmt.Fprintf(&b, "  %s %s  %-40s x%d  %s\n",
					s.SaleDate, s.SaleTime, clip(s.Title, 40), s.Quantity, money.Format(s.TotalPrice))
			}

			fmt.Fprintln(&b, "\nLow stock")
			for _, e := range low {
				fmt.Fprintf(&b, "  %-40s %3d  %s\n", clip(e.Book.Title, 40), e.Book.Quantity, e.Status)
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	return cmd
}

func newReportLowStockCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Books below the low-stock threshold",
		Long: `List books below the low-stock threshold, lowest stock first.

Books under the critical threshold are tagged Critical, the rest Low.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			entries := report.LowStock(app.store.Books(), app.store.Settings())
			if rootOpts.Format == "json" {
				return app.out.Success(entries)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%-40s %6s  %s\n", "TITLE", "STOCK", "STATUS")
			for _, e := range entries {
				fmt.Fprintf(&b, "%-40s %6d  %s\n", clip(e.Book.Title, 40), e.Book.Quantity, e.Status)
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	return cmd
}

func newReportDailyCommand(rootOpts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Sales and total for one date",
		Long: `Show the sales recorded on one date and their total.

Defaults to today.

Example:
  bluewave report daily --date 2024-02-01`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if date == "" {
				date = domain.Today(app.store.Clock())
			}
			matched, total := report.SalesOnDate(app.store.Sales(), date)

			if rootOpts.Format == "json" {
				return app.out.Success(map[string]interface{}{
					"date":  date,
					"sales": matched,
					"total": total,
				})
			}

			money := app.money()
			var b strings.Builder
			fmt.Fprintf(&b, "Sales on %s\n", date)
			for _, s := range matched {
				fmt.Fprintf(&b, "  %s  %-40s x%d  %s\n", s.SaleTime, clip(s.Title, 40), s.Quantity, money.Format(s.TotalPrice))
			}
			fmt.Fprintf(&b, "Total: %s\n", money.Format(total))
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to report on (YYYY-MM-DD, default today)")

	return cmd
}

func newReportSalesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Full sales report grouped by date",
		Long: `List every sale grouped by date, newest date first. Within a
date, sales keep their ledger order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			groups := report.SalesByDateDescending(app.store.Sales())
			if rootOpts.Format == "json" {
				return app.out.Success(groups)
			}

			money := app.money()
			var b strings.Builder
			for _, g := range groups {
				fmt.Fprintf(&b, "%s  (total %s)\n", g.Date, money.Format(g.Total))
				for _, s := range g.Sales {
					fmt.Fprintf(&b, "  %s  %-40s x%d  %s\n", s.SaleTime, clip(s.Title, 40), s.Quantity, money.Format(s.TotalPrice))
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	return cmd
}
