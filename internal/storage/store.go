// Package storage persists the expense document. Every backend loads
// and saves the document whole; there is no incremental persistence.
package storage

import (
	"context"

	"expenses/internal/core"
)

// Store loads and saves the whole expense document.
type Store interface {
	// Load returns the persisted document, or the default empty
	// document when nothing usable has been persisted yet.
	Load(ctx context.Context) (core.Document, error)

	// Save serializes the full document, overwriting any prior state.
	Save(ctx context.Context, doc core.Document) error
}
