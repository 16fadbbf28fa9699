package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"expenses/internal/core"
	"expenses/internal/services"
)

func newUpdateCmd(svc *services.ExpenseService) *cobra.Command {
	var (
		amount      string
		description string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: expected an integer", args[0])
			}

			in := services.UpdateInput{ID: id}
			flags := cmd.Flags()
			if flags.Changed("amount") {
				parsed, err := core.ParseAmount(amount)
				if err != nil {
					return fmt.Errorf("invalid amount %q: expected a non-negative decimal number", amount)
				}
				in.Amount = &parsed
			}
			if flags.Changed("description") {
				in.Description = &description
			}
			if flags.Changed("category") {
				in.Category = &category
			}

			out := cmd.OutOrStdout()
			if _, err := svc.UpdateExpense(cmd.Context(), in); err != nil {
				if errors.Is(err, core.ErrExpenseNotFound) {
					fmt.Fprintf(out, "❌ Error: Expense with ID %d not found.\n", id)
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "✅ Expense with ID %d updated successfully.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount for the expense")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description for the expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category for the expense")
	return cmd
}
