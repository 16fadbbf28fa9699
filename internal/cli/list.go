package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"expenses/internal/services"
)

func newListCmd(svc *services.ExpenseService) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.ListExpenses(cmd.Context(), category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Recorded == 0 {
				fmt.Fprintln(out, "No expenses recorded yet.")
				return nil
			}
			if len(result.Expenses) == 0 {
				fmt.Fprintf(out, "No expenses found in category '%s'.\n", category)
				return nil
			}

			fmt.Fprintf(out, "%-4s %-12s %-10s %-15s %s\n", "ID", "Date", "Amount", "Category", "Description")
			fmt.Fprintln(out, strings.Repeat("-", 60))
			for _, e := range result.Expenses {
				fmt.Fprintf(out, "%-4d %-12s $%-9s %-15s %s\n",
					e.ID, e.Date, e.Amount, e.Category, e.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter expenses by category")
	return cmd
}
