package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"expenses/internal/core"
	"expenses/internal/logging"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the document in a SQLite database. It preserves the
// whole-document semantics of the JSON store: Load materializes every
// row, Save rewrites all tables inside one transaction. The position
// column keeps insertion order independent of expense ids.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (core.Document, error) {
	doc := core.NewDocument()

	rows, err := s.db.QueryContext(ctx,
		`SELECT expense_id, expense_date, description, amount_cents, category
		 FROM expenses ORDER BY position`)
	if err != nil {
		return doc, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e       core.Expense
			rawDate string
			cents   int64
		)
		if err := rows.Scan(&e.ID, &rawDate, &e.Description, &cents, &e.Category); err != nil {
			return doc, fmt.Errorf("scan expense row: %w", err)
		}
		date, err := core.ParseDate(rawDate)
		if err != nil {
			return doc, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		e.Date = date
		e.Amount = core.Money{Cents: cents}
		doc.Expenses = append(doc.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return doc, fmt.Errorf("iterate expenses: %w", err)
	}

	budgetRows, err := s.db.QueryContext(ctx, `SELECT month, amount_cents FROM budgets`)
	if err != nil {
		return doc, fmt.Errorf("query budgets: %w", err)
	}
	defer budgetRows.Close()

	for budgetRows.Next() {
		var (
			month int
			cents int64
		)
		if err := budgetRows.Scan(&month, &cents); err != nil {
			return doc, fmt.Errorf("scan budget row: %w", err)
		}
		doc.Metadata.Budgets[strconv.Itoa(month)] = core.Money{Cents: cents}
	}
	if err := budgetRows.Err(); err != nil {
		return doc, fmt.Errorf("iterate budgets: %w", err)
	}

	var lastID int64
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = 'last_id'`).Scan(&lastID)
	if err != nil && err != sql.ErrNoRows {
		return doc, fmt.Errorf("query last id: %w", err)
	}
	doc.Metadata.LastID = lastID

	return doc, nil
}

func (s *SQLiteStore) Save(ctx context.Context, doc core.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM budgets`); err != nil {
		return fmt.Errorf("clear budgets: %w", err)
	}

	for _, e := range doc.Expenses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (expense_id, expense_date, description, amount_cents, category)
			 VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Date.String(), e.Description, e.Amount.Cents, e.Category)
		if err != nil {
			return fmt.Errorf("insert expense %d: %w", e.ID, err)
		}
	}

	for key, amount := range doc.Metadata.Budgets {
		month, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("budget key %q: %w", key, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO budgets (month, amount_cents) VALUES (?, ?)`,
			month, amount.Cents)
		if err != nil {
			return fmt.Errorf("insert budget for month %d: %w", month, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO metadata (key, value) VALUES ('last_id', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		doc.Metadata.LastID)
	if err != nil {
		return fmt.Errorf("store last id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.DebugContext(ctx, "Document saved",
		logging.FieldBackend, "sqlite",
		logging.FieldExpenses, len(doc.Expenses),
		logging.FieldLastID, doc.Metadata.LastID)
	return nil
}
