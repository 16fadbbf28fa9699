/*
Package cli implements all subcommands of the expenses tool.

Every command runs a single load → transform → (optional) save → report
pass through the expense service. Domain errors (unknown id, invalid
month) are printed as a status line and do not fail the process; only
argument parsing errors do.
*/
package cli

import (
	"github.com/spf13/cobra"

	"expenses/internal/services"
)

// NewRootCmd builds the command tree around the given service.
func NewRootCmd(svc *services.ExpenseService) *cobra.Command {
	root := &cobra.Command{
		Use:   "expenses",
		Short: "A simple command-line expense tracker",
		Long: `Track personal expenses from the command line.

Expenses carry a date, description, amount and category. They can be
listed, updated, deleted, summarized against monthly budgets and
exported to CSV. State lives in a single local store; nothing leaves
the machine.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newAddCmd(svc),
		newListCmd(svc),
		newUpdateCmd(svc),
		newDeleteCmd(svc),
		newSummaryCmd(svc),
		newBudgetCmd(svc),
		newExportCmd(svc),
	)
	return root
}
