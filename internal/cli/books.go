package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bluewave/internal/report"
	"bluewave/internal/store"
)

// NewBookCommand creates the book command group.
func NewBookCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Manage the catalog",
	}

	cmd.AddCommand(newBookAddCommand(rootOpts))
	cmd.AddCommand(newBookListCommand(rootOpts))
	cmd.AddCommand(newBookUpdateCommand(rootOpts))
	cmd.AddCommand(newBookDeleteCommand(rootOpts))

	return cmd
}

func newBookAddCommand(rootOpts *RootOptions) *cobra.Command {
	var input store.BookInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog.

The id is assigned automatically (highest existing id plus one) and the
ISBN is derived from it.

Example:
  bluewave book add --title "Dune" --author "Frank Herbert" --price 11.50 --quantity 30 --category Fiction`,
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

			book, err := app.store.AddBook(input)
			if err != nil {
				return app.out.DomainError(err)
			}
			if rootOpts.Format == "json" {
				return app.out.Success(book)
			}
			return app.out.Successf("Added book #%d: %s", book.ID, book.Title)
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&input.Author, "author", "", "author name (required)")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "unit price (required)")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 0, "initial stock")
	cmd.Flags().StringVar(&input.Category, "category", "Fiction", "category")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newBookListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			books := app.store.Books()
			if rootOpts.Format == "json" {
				return app.out.Success(books)
			}

			money := app.money()
			settings := app.store.Settings()
			var b strings.Builder
			fmt.Fprintf(&b, "%-4s %-40s %-25s %10s %6s  %s\n", "ID", "TITLE", "AUTHOR", "PRICE", "STOCK", "CATEGORY")
			for _, book := range books {
				marker := ""
				if book.Quantity < settings.CriticalStockThreshold {
					marker = " !!"
				} else if book.Quantity < settings.LowStockThreshold {
					marker = " !"
				}
				fmt.Fprintf(&b, "%-4d %-40s %-25s %10s %6d%s %s\n",
					book.ID, clip(book.Title, 40), clip(book.Author, 25),
					money.Format(book.Price), book.Quantity, marker, book.Category)
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	return cmd
}

func newBookUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		title    string
		author   string
		price    float64
		category string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a book",
		Long: `Edit a book's title, author, price or category.

Only the flags you pass are changed. Stock is not editable here: use
restock or sell.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()
			if _, err := app.requireSession(); err != nil {
				return err
			}

			var patch store.BookPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("author") {
				patch.Author = &author
			}
			if cmd.Flags().Changed("price") {
				patch.Price = &price
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}

			book, err := app.store.UpdateBook(id, patch)
			if err != nil {
				return app.out.DomainError(err)
			}
			if rootOpts.Format == "json" {
				return app.out.Success(book)
			}
			return app.out.Successf("Updated book #%d: %s", book.ID, book.Title)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&author, "author", "", "new author")
	cmd.Flags().Float64Var(&price, "price", 0, "new unit price")
	cmd.Flags().StringVar(&category, "category", "", "new category")

	return cmd
}

func newBookDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Long: `Delete a book from the catalog.

Sales that reference the book stay in the ledger unchanged; their
title and price snapshots were taken at sale time.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()
			if _, err := app.requireSession(); err != nil {
				return err
			}

			ok, err := confirm(cmd, assumeYes, fmt.Sprintf("Delete book #%d?", id))
			if err != nil {
				return err
			}
			if !ok {
				return app.out.Successf("Cancelled.")
			}

			if err := app.store.DeleteBook(id); err != nil {
				return app.out.DomainError(err)
			}
			return app.out.Successf("Deleted book #%d.", id)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation")

	return cmd
}

// NewRestockCommand creates the restock command.
func NewRestockCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restock <book-id> <quantity>",
		Short: "Add stock to a book",
		Long: `Add units to a book's stock.

Example:
  bluewave restock 5 20`,
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
			if _, err := app.requireSession(); err != nil {
				return err
			}

			book, err := app.store.Restock(id, quantity)
			if err != nil {
				return app.out.DomainError(err)
			}
			if rootOpts.Format == "json" {
				return app.out.Success(book)
			}
			return app.out.Successf("Added %d units to %q (now %d in stock).", quantity, book.Title, book.Quantity)
		},
	}
	return cmd
}

// NewInventoryCommand creates the inventory command.
func NewInventoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Show stock status for every book",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			rows := report.Inventory(app.store.Books(), app.store.Sales(), app.store.Settings())
			if rootOpts.Format == "json" {
				return app.out.Success(rows)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%-40s %6s  %-12s %s\n", "TITLE", "STOCK", "STATUS", "LAST SALE")
			for _, row := range rows {
				lastSale := row.LastSale
				if lastSale == "" {
					lastSale = "Never sold"
				}
				fmt.Fprintf(&b, "%-40s %6d  %-12s %s\n",
					clip(row.Book.Title, 40), row.Book.Quantity, row.Status, lastSale)
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid id %q", arg), err)
	}
	return id, nil
}

func parseQuantity(arg string) (int, error) {
	quantity, err := strconv.Atoi(arg)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid quantity %q", arg), err)
	}
	return quantity, nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
