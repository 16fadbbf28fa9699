package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"expenses/internal/export"
	"expenses/internal/services"
)

func newExportCmd(svc *services.ExpenseService) *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := filename
			if name == "" {
				name = export.DefaultFilename
			}

			out := cmd.OutOrStdout()
			result, err := svc.Export(cmd.Context(), name)
			if err != nil {
				if errors.Is(err, services.ErrNothingToExport) {
					fmt.Fprintln(out, "No expenses to export.")
					return nil
				}
				fmt.Fprintf(out, "❌ Error: Could not write to file %s.\n", name)
				return nil
			}

			fmt.Fprintf(out, "✅ Expenses successfully exported to %s.\n", result.Filename)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Optional name for the CSV file (default: expenses.csv)")
	return cmd
}
