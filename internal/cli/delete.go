package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"expenses/internal/core"
	"expenses/internal/services"
)

func newDeleteCmd(svc *services.ExpenseService) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: expected an integer", args[0])
			}

			out := cmd.OutOrStdout()
			if err := svc.DeleteExpense(cmd.Context(), id); err != nil {
				if errors.Is(err, core.ErrExpenseNotFound) {
					fmt.Fprintf(out, "❌ Error: Expense with ID %d not found.\n", id)
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "✅ Expense with ID %d deleted successfully.\n", id)
			return nil
		},
	}
}
