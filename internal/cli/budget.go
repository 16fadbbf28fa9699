package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/core"
	"expenses/internal/services"
)

func newBudgetCmd(svc *services.ExpenseService) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget <amount>",
		Short: "Set a monthly budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: expected a non-negative decimal number", args[0])
			}

			out := cmd.OutOrStdout()
			m, err := core.ParseMonth(month)
			if err != nil {
				fmt.Fprintln(out, "❌ Error: Invalid month. Please provide a number between 1 and 12.")
				return nil
			}

			if err := svc.SetBudget(cmd.Context(), m, amount); err != nil {
				return err
			}

			fmt.Fprintf(out, "✅ Budget for %s set to $%s.\n", m.Name(), amount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month (1-12) for which to set the budget")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}
