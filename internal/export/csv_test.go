package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expenses/internal/core"
)

func sampleExpenses() []core.Expense {
	return []core.Expense{
		{ID: 2, Date: core.NewDate(2024, 3, 1), Description: "Rent, March", Amount: core.Money{Cents: 120000}, Category: "Housing"},
		{ID: 1, Date: core.NewDate(2024, 1, 15), Description: "Coffee", Amount: core.Money{Cents: 350}, Category: "Food"},
	}
}

func TestCSVWriterWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSVWriter{}).Write(&buf, sampleExpenses()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,date,description,amount,category" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	// Rows keep store order, no re-sorting
	if !strings.HasPrefix(lines[1], "2,2024-03-01,") {
		t.Fatalf("expected id 2 first, got %s", lines[1])
	}
	// Embedded comma is quoted per CSV rules
	if !strings.Contains(lines[1], `"Rent, March"`) {
		t.Fatalf("expected quoted description, got %s", lines[1])
	}
	if !strings.Contains(lines[2], "3.50") {
		t.Fatalf("expected amount 3.50 in %s", lines[2])
	}
}

func TestCSVWriterWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := (CSVWriter{}).WriteFile(path, sampleExpenses()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "id,date,description,amount,category") {
		t.Fatalf("expected header in file, got:\n%s", data)
	}
}

func TestCSVWriterWriteFileBadPath(t *testing.T) {
	err := (CSVWriter{}).WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleExpenses())
	if err == nil {
		t.Fatalf("expected error for unwritable destination")
	}
}
