package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/core"
	"expenses/internal/services"
)

func newSummaryCmd(svc *services.ExpenseService) *cobra.Command {
	var (
		month    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a summary of expenses",
		Long: `Show the total of recorded expenses, optionally restricted to a
month of the current year and/or a category. When a month is given and
a budget exists for it, the total is compared against the budget.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			filter := core.SummaryFilter{Category: category}
			if month != "" {
				m, err := core.ParseMonth(month)
				if err != nil {
					fmt.Fprintln(out, "❌ Error: Invalid month. Please provide a number between 1 and 12.")
					return nil
				}
				filter.Month = m
			}

			report, err := svc.Summarize(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if report.Recorded == 0 {
				fmt.Fprintln(out, "No expenses to summarize.")
				return nil
			}
			if report.Count == 0 {
				fmt.Fprintln(out, "No expenses found for the specified criteria.")
				return nil
			}

			title := "Total expenses"
			if report.Month != 0 {
				title = fmt.Sprintf("Total expenses for %s %d", report.Month.Name(), report.Year)
			}
			if report.Category != "" {
				title += fmt.Sprintf(" in category '%s'", report.Category)
			}
			fmt.Fprintf(out, "📊 %s: $%s\n", title, report.Total)

			if report.HasBudget {
				fmt.Fprintf(out, "   Budget for %s: $%s\n", report.Month.Name(), report.Budget)
				if report.Overspent() {
					fmt.Fprintf(out, "   ⚠️ Warning: You have exceeded the budget by $%s.\n", report.Total.Sub(report.Budget))
				} else {
					fmt.Fprintf(out, "   Remaining budget: $%s\n", report.Budget.Sub(report.Total))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Summarize for a specific month (1-12) of the current year")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter summary by category")
	return cmd
}
