package sqlite

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tquery-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStoreCreatesSchemaAndSeed(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	res, err := store.Query(ctx, "SELECT COUNT(*) FROM t_shirts")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Len(t, res.Rows[0], 1)
	count, ok := res.Rows[0][0].(int64)
	require.True(t, ok)
	assert.Greater(t, count, int64(0), "seed migration must populate t_shirts")

	res, err = store.Query(ctx, "SELECT COUNT(*) FROM discounts")
	require.NoError(t, err)
	count = res.Rows[0][0].(int64)
	assert.Greater(t, count, int64(0), "seed migration must populate discounts")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "tquery-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := store.Query(ctx, "SELECT COUNT(*) FROM t_shirts")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopen against the same file; migrations must not re-apply.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	second, err := store.Query(ctx, "SELECT COUNT(*) FROM t_shirts")
	require.NoError(t, err)
	assert.Equal(t, first.Rows[0][0], second.Rows[0][0])
}

func TestQueryAggregates(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	res, err := store.Query(ctx,
		"SELECT SUM(stock_quantity) FROM t_shirts WHERE brand = 'Nike'")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	total, ok := res.Rows[0][0].(int64)
	require.True(t, ok, "integer aggregates scan as int64")
	assert.Greater(t, total, int64(0))
}

func TestQueryTextColumnsScanAsStrings(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	res, err := store.Query(context.Background(),
		"SELECT DISTINCT color FROM t_shirts WHERE brand = 'Adidas' ORDER BY color")
	require.NoError(t, err)
	require.NotEmpty(t, res.Rows)
	for _, row := range res.Rows {
		_, ok := row[0].(string)
		assert.True(t, ok, "colour values must scan as strings, got %T", row[0])
	}
}

func TestQueryFloatsCarryDecimalConvention(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	res, err := store.Query(context.Background(),
		"SELECT pct_discount FROM discounts ORDER BY discount_id LIMIT 1")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	_, ok := res.Rows[0][0].(domain.Decimal)
	assert.True(t, ok, "REAL columns must scan as Decimal, got %T", res.Rows[0][0])
}

func TestQueryNoMatchingRows(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	res, err := store.Query(context.Background(),
		"SELECT SUM(stock_quantity) FROM t_shirts WHERE brand = 'Nonexistent'")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.True(t, res.IsNoData(), "NULL aggregate must read as no data")
}

func TestQueryRejectsMutations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for _, stmt := range []string{
		"DELETE FROM t_shirts",
		"UPDATE t_shirts SET price = 1",
		"DROP TABLE t_shirts",
	} {
		_, err := store.Query(ctx, stmt)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "statement %q must be rejected", stmt)
	}

	// The table must be untouched afterwards.
	res, err := store.Query(ctx, "SELECT COUNT(*) FROM t_shirts")
	require.NoError(t, err)
	assert.Greater(t, res.Rows[0][0].(int64), int64(0))
}

func TestTableInfoListsBothTables(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	info, err := store.TableInfo(context.Background())
	require.NoError(t, err)
	assert.Contains(t, info, "CREATE TABLE")
	assert.Contains(t, info, "t_shirts")
	assert.Contains(t, info, "discounts")
	assert.Contains(t, info, "stock_quantity")
}
