package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expenses/internal/core"
	"expenses/internal/logging"
)

// JSONStore keeps the document in a single indented JSON file.
//
// An absent or unparseable file is replaced by the default empty
// document on the next save; load never fails because of it. Saves go
// through a temp file and rename so a crash mid-write cannot leave a
// truncated document behind.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) (*JSONStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	return &JSONStore{path: path}, nil
}

func (s *JSONStore) Load(ctx context.Context) (core.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Store file unreadable, starting from empty document",
				logging.FieldPath, s.path, logging.FieldError, err)
		}
		return core.NewDocument(), nil
	}

	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.WarnContext(ctx, "Store file is not valid JSON, starting from empty document",
			logging.FieldPath, s.path, logging.FieldError, err)
		return core.NewDocument(), nil
	}
	if err := doc.Validate(); err != nil {
		slog.WarnContext(ctx, "Store file failed validation, starting from empty document",
			logging.FieldPath, s.path, logging.FieldError, err)
		return core.NewDocument(), nil
	}

	if doc.Expenses == nil {
		doc.Expenses = []core.Expense{}
	}
	if doc.Metadata.Budgets == nil {
		doc.Metadata.Budgets = map[string]core.Money{}
	}
	return doc, nil
}

func (s *JSONStore) Save(ctx context.Context, doc core.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	slog.DebugContext(ctx, "Document saved",
		logging.FieldPath, s.path,
		logging.FieldExpenses, len(doc.Expenses),
		logging.FieldLastID, doc.Metadata.LastID)
	return nil
}
