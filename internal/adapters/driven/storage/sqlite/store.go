package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bijilboby/TQuery/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/bijilboby/TQuery/internal/core/domain"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
)

// inventoryTables are the tables exposed to the query translator, in the
// order their schema appears in the prompt.
var inventoryTables = []string{"t_shirts", "discounts"}

// Store is the SQLite-backed inventory store.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.InventoryStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tquery/data/inventory.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tquery", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "inventory.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Query runs a read-only structured query and returns its rows. Only SELECT
// statements are accepted; the translator occasionally emits mutations and
// those must never reach the database.
func (s *Store) Query(ctx context.Context, query string) (domain.TabularResult, error) {
	if !domain.IsQuery(query) {
		return domain.TabularResult{}, fmt.Errorf("%w: only SELECT statements are executable", domain.ErrInvalidInput)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return domain.TabularResult{}, fmt.Errorf("querying inventory: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return domain.TabularResult{}, fmt.Errorf("reading columns: %w", err)
	}

	var result domain.TabularResult
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return domain.TabularResult{}, fmt.Errorf("scanning row: %w", err)
		}

		row := make(domain.Row, len(raw))
		for i, v := range raw {
			row[i] = convertValue(v)
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return domain.TabularResult{}, fmt.Errorf("iterating rows: %w", err)
	}

	return result, nil
}

// TableInfo returns the CREATE statements of the queryable tables, in the
// form the translator prompt expects.
func (s *Store) TableInfo(ctx context.Context) (string, error) {
	var infos []string
	for _, table := range inventoryTables {
		var ddl string
		err := s.db.QueryRowContext(ctx, `
			SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?
		`, table).Scan(&ddl)
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("table %s: %w", table, domain.ErrNotFound)
		}
		if err != nil {
			return "", fmt.Errorf("reading schema for %s: %w", table, err)
		}
		infos = append(infos, ddl)
	}
	return strings.Join(infos, "\n\n"), nil
}

// convertValue maps driver values onto the domain's value set. Floats carry
// the fixed-point Decimal convention so discount percentages and computed
// revenue render the way downstream formatting expects.
func convertValue(v any) domain.Value {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case float64:
		return domain.Decimal(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return val
	}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
