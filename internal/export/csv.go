// Package export renders expenses to tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"expenses/internal/core"
)

// DefaultFilename is used when the caller does not name a destination.
const DefaultFilename = "expenses.csv"

// CSVWriter writes expenses to CSV format.
type CSVWriter struct{}

// WriteFile writes the expenses to a CSV file at the given path.
func (w CSVWriter) WriteFile(path string, expenses []core.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, expenses)
}

// Write writes a header row followed by one row per expense, in the
// order given (store order, not re-sorted).
func (w CSVWriter) Write(out io.Writer, expenses []core.Expense) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"id", "date", "description", "amount", "category"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, e := range expenses {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.String(),
			e.Description,
			e.Amount.String(),
			e.Category,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
