package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/core"
	"expenses/internal/services"
)

func newAddCmd(svc *services.ExpenseService) *cobra.Command {
	var (
		description string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a new expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: expected a non-negative decimal number", args[0])
			}

			e, err := svc.AddExpense(cmd.Context(), services.AddInput{
				Amount:      amount,
				Description: description,
				Category:    category,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Expense added successfully (ID: %d)\n", e.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Description of the expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category of the expense (e.g., Food, Transport)")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
