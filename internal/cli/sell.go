package cli

import (
	"github.com/spf13/cobra"

	"bluewave/internal/domain"
	"bluewave/internal/sales"
)

// NewSellCommand creates the sell command.
func NewSellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell <book-id> <quantity>",
		Short: "Record a sale",
		Long: `Record a sale of the given book.

The book's stock is decremented, an immutable sale record is appended
to the ledger, and a receipt is printed. The sale is attributed to the
active session.

Example:
  bluewave sell 3 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			current, err := app.requireSession()
			if err != nil {
				return err
			}

			sale, err := app.sales.ProcessSale(id, quantity, current.Username)
			if err != nil {
				return app.out.DomainError(err)
			}

			if rootOpts.Format == "json" {
				return app.out.Success(sale)
			}
			receipt := salesReceipt(app, *sale, current.FullName)
			return app.out.Success(receipt)
		},
	}
	return cmd
}

func salesReceipt(app *appEnv, sale domain.Sale, fullName string) string {
	return sales.NewReceipt(sale, fullName).Render(app.money().Format)
}
