// Package services implements the domain operations. Every operation is
// a single load, transform, optional save flow against the configured
// store; nothing persists in memory between invocations.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"expenses/internal/core"
	"expenses/internal/export"
	"expenses/internal/logging"
	"expenses/internal/storage"
)

// ErrNothingToExport is returned when export finds no expenses; no file
// is written in that case.
var ErrNothingToExport = errors.New("no expenses to export")

// ExpenseService orchestrates expense operations against a store.
type ExpenseService struct {
	store storage.Store
	now   func() time.Time
}

func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{
		store: store,
		now:   time.Now,
	}
}

// AddInput carries the fields for a new expense.
type AddInput struct {
	Amount      core.Money
	Description string
	Category    string
}

// AddExpense assigns the next id, stamps today's date, normalizes the
// category and persists the grown document.
func (s *ExpenseService) AddExpense(ctx context.Context, in AddInput) (core.Expense, error) {
	if strings.TrimSpace(in.Description) == "" {
		return core.Expense{}, core.ErrEmptyDescription
	}
	if err := in.Amount.Validate(); err != nil {
		return core.Expense{}, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load document: %w", err)
	}

	e := core.Expense{
		ID:          doc.NextID(),
		Date:        core.Today(s.now()),
		Description: in.Description,
		Amount:      in.Amount,
		Category:    core.NormalizeCategory(in.Category),
	}
	doc.Expenses = append(doc.Expenses, e)

	if err := s.store.Save(ctx, doc); err != nil {
		return core.Expense{}, fmt.Errorf("save document: %w", err)
	}

	slog.InfoContext(ctx, "Expense added",
		logging.FieldExpenseID, e.ID,
		logging.FieldDescription, e.Description,
		logging.FieldAmountCents, e.Amount.Cents,
		logging.FieldCategory, e.Category)
	return e, nil
}

// ListResult distinguishes an empty store from a filter with no matches.
type ListResult struct {
	Expenses []core.Expense // matches, sorted ascending by date
	Recorded int            // expenses in the store before filtering
}

// ListExpenses returns expenses sorted by date, optionally restricted to
// a category (case-insensitive match).
func (s *ExpenseService) ListExpenses(ctx context.Context, category string) (ListResult, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("load document: %w", err)
	}

	result := ListResult{Recorded: len(doc.Expenses)}
	for _, e := range doc.Expenses {
		if category != "" && !core.SameCategory(e.Category, category) {
			continue
		}
		result.Expenses = append(result.Expenses, e)
	}

	sort.SliceStable(result.Expenses, func(i, j int) bool {
		return result.Expenses[i].Date.Before(result.Expenses[j].Date)
	})
	return result, nil
}

// UpdateInput names the expense to change; nil fields are left untouched.
type UpdateInput struct {
	ID          int64
	Description *string
	Amount      *core.Money
	Category    *string
}

// UpdateExpense overwrites the provided fields on the first expense with
// a matching id. The date is never altered. A missing id leaves the
// store untouched on disk.
func (s *ExpenseService) UpdateExpense(ctx context.Context, in UpdateInput) (core.Expense, error) {
	if in.Amount != nil {
		if err := in.Amount.Validate(); err != nil {
			return core.Expense{}, err
		}
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load document: %w", err)
	}

	// First-match semantics: ids are unique in practice but the stored
	// document does not enforce it.
	for i := range doc.Expenses {
		if doc.Expenses[i].ID != in.ID {
			continue
		}
		if in.Description != nil {
			doc.Expenses[i].Description = *in.Description
		}
		if in.Amount != nil {
			doc.Expenses[i].Amount = *in.Amount
		}
		if in.Category != nil {
			doc.Expenses[i].Category = core.NormalizeCategory(*in.Category)
		}

		if err := s.store.Save(ctx, doc); err != nil {
			return core.Expense{}, fmt.Errorf("save document: %w", err)
		}

		slog.InfoContext(ctx, "Expense updated", logging.FieldExpenseID, in.ID)
		return doc.Expenses[i], nil
	}

	return core.Expense{}, core.ErrExpenseNotFound
}

// DeleteExpense removes every expense with the given id. It saves only
// when something was actually removed.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	kept := make([]core.Expense, 0, len(doc.Expenses))
	for _, e := range doc.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(doc.Expenses) {
		return core.ErrExpenseNotFound
	}
	doc.Expenses = kept

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted", logging.FieldExpenseID, id)
	return nil
}

// Summarize totals the expenses matching the filter. The month filter is
// applied against the current year.
func (s *ExpenseService) Summarize(ctx context.Context, filter core.SummaryFilter) (core.SummaryReport, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return core.SummaryReport{}, fmt.Errorf("load document: %w", err)
	}
	return core.Summarize(doc, filter, s.now())
}

// SetBudget stores the monthly budget and persists immediately.
func (s *ExpenseService) SetBudget(ctx context.Context, month core.Month, amount core.Money) error {
	if err := month.Validate(); err != nil {
		return err
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	doc.SetBudget(month, amount)

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	slog.InfoContext(ctx, "Budget set",
		logging.FieldMonth, int(month),
		logging.FieldAmountCents, amount.Cents)
	return nil
}

// ExportResult reports where the export landed and how many rows it has.
type ExportResult struct {
	Filename string
	Count    int
}

// Export writes every expense, in store order, to a CSV file. An empty
// store produces ErrNothingToExport and no file. The store itself is
// never mutated.
func (s *ExpenseService) Export(ctx context.Context, filename string) (ExportResult, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return ExportResult{}, fmt.Errorf("load document: %w", err)
	}
	if len(doc.Expenses) == 0 {
		return ExportResult{}, ErrNothingToExport
	}

	if filename == "" {
		filename = export.DefaultFilename
	}
	if err := (export.CSVWriter{}).WriteFile(filename, doc.Expenses); err != nil {
		return ExportResult{}, err
	}

	slog.InfoContext(ctx, "Expenses exported",
		logging.FieldFilename, filename,
		logging.FieldCount, len(doc.Expenses))
	return ExportResult{Filename: filename, Count: len(doc.Expenses)}, nil
}
