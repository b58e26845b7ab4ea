package driven

import (
	"context"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

// InventoryStore is the relational store holding the product inventory.
type InventoryStore interface {
	// Query runs a read-only structured query and returns its rows.
	Query(ctx context.Context, query string) (domain.TabularResult, error)

	// TableInfo returns the schema description injected into the translator
	// prompt: the CREATE statements of the queryable tables.
	TableInfo(ctx context.Context) (string, error)

	// Close releases the underlying connection.
	Close() error
}
