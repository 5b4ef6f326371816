package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bluewave/internal/store"
)

// NewSupplierCommand creates the supplier command group.
func NewSupplierCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supplier",
		Short: "Manage suppliers",
	}

	cmd.AddCommand(newSupplierAddCommand(rootOpts))
	cmd.AddCommand(newSupplierListCommand(rootOpts))

	return cmd
}

func newSupplierAddCommand(rootOpts *RootOptions) *cobra.Command {
	var input store.SupplierInput

	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add a supplier",
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

			supplier, err := app.store.AddSupplier(input)
			if err != nil {
				return app.out.DomainError(err)
			}
			if rootOpts.Format == "json" {
				return app.out.Success(supplier)
			}
			return app.out.Successf("Added supplier #%d: %s", supplier.ID, supplier.Name)
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "supplier name (required)")
	cmd.Flags().StringVar(&input.ContactPerson, "contact", "", "contact person")
	cmd.Flags().StringVar(&input.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&input.Categories, "categories", "", "supplied categories")
	cmd.Flags().StringVar(&input.Address, "address", "", "postal address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSupplierListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List suppliers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			suppliers := app.store.Suppliers()
			if rootOpts.Format == "json" {
				return app.out.Success(suppliers)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%-4s %-28s %-20s %-28s %s\n", "ID", "NAME", "CONTACT", "EMAIL", "PHONE")
			for _, s := range suppliers {
				fmt.Fprintf(&b, "%-4d %-28s %-20s %-28s %s\n",
					s.ID, clip(s.Name, 28), clip(s.ContactPerson, 20), clip(s.Email, 28), s.Phone)
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	return cmd
}
