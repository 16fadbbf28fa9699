package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expenses/internal/core"
)

func testDocument() core.Document {
	doc := core.NewDocument()
	doc.Expenses = []core.Expense{
		{ID: 1, Date: core.NewDate(2024, 3, 1), Description: "Rent", Amount: core.Money{Cents: 120000}, Category: "Housing"},
		{ID: 2, Date: core.NewDate(2024, 1, 15), Description: "Coffee", Amount: core.Money{Cents: 350}, Category: "Food"},
	}
	doc.Metadata.LastID = 2
	doc.SetBudget(3, core.Money{Cents: 150000})
	return doc
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "expenses.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Expenses) != 0 || doc.Metadata.LastID != 0 {
		t.Fatalf("expected default document, got %+v", doc)
	}
	if doc.Metadata.Budgets == nil {
		t.Fatalf("budgets map must be initialized")
	}
}

func TestJSONStoreLoadCorruptFile(t *testing.T) {
	cases := []string{
		"{not json",
		`"just a string"`,
		`{"expenses": [{"id": -4}], "metadata": {"last_id": 1, "budgets": {}}}`,
		`{"expenses": [], "metadata": {"last_id": -1, "budgets": {}}}`,
	}
	for i, content := range cases {
		path := filepath.Join(t.TempDir(), "expenses.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("case %d: write: %v", i, err)
		}

		store, err := NewJSONStore(path)
		if err != nil {
			t.Fatalf("case %d: new store: %v", i, err)
		}
		doc, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("case %d: load must absorb corruption, got %v", i, err)
		}
		if len(doc.Expenses) != 0 || doc.Metadata.LastID != 0 {
			t.Fatalf("case %d: expected default document, got %+v", i, doc)
		}
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "expenses.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	want := testDocument()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Expenses) != len(want.Expenses) {
		t.Fatalf("expected %d expenses, got %d", len(want.Expenses), len(got.Expenses))
	}
	for i := range want.Expenses {
		if got.Expenses[i] != want.Expenses[i] {
			t.Fatalf("expense %d mismatch: %+v != %+v", i, got.Expenses[i], want.Expenses[i])
		}
	}
	if got.Metadata.LastID != want.Metadata.LastID {
		t.Fatalf("last id mismatch: %d != %d", got.Metadata.LastID, want.Metadata.LastID)
	}
	if budget, ok := got.BudgetFor(3); !ok || budget.Cents != 150000 {
		t.Fatalf("budget mismatch: %v (ok=%v)", budget, ok)
	}
}

func TestJSONStoreSaveIsHumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(context.Background(), testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(data)
	for _, want := range []string{`"last_id": 2`, `"2024-01-15"`, `1200.00`, `"Housing"`} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected file to contain %q:\n%s", want, content)
		}
	}
	// No stray temp file after a successful save
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestJSONStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "expenses.json")
	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Save(context.Background(), core.NewDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}
}
