package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bijilboby/TQuery/internal/core/ports/driven"
)

func TestNewPromptStore_WithCustomDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewPromptStore(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}

func TestNewPromptStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewPromptStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tquery", "prompts"), store.Dir())
}

func TestPromptStore_Load_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// Load triggers lazy init
	_, err = store.Load(driven.PromptTranslatorPrefix)
	require.NoError(t, err)

	files := []string{
		"translator_prefix.txt",
		"translator_suffix.txt",
		"README.md",
	}
	for _, f := range files {
		path := filepath.Join(dir, f)
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected file %s to exist", f)
	}
}

func TestPromptStore_Load_DefaultsCarryPlaceholders(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	prefix, err := store.Load(driven.PromptTranslatorPrefix)
	require.NoError(t, err)
	assert.Contains(t, prefix, "%d")
	assert.Contains(t, prefix, "SQLQuery:")

	suffix, err := store.Load(driven.PromptTranslatorSuffix)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(suffix, "%s"))
}

func TestPromptStore_Load_UserFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	custom := "translate the question, reply with SQLQuery only"
	path := filepath.Join(dir, driven.PromptTranslatorPrefix+".txt")
	require.NoError(t, os.WriteFile(path, []byte(custom+"\n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	got, err := store.Load(driven.PromptTranslatorPrefix)
	require.NoError(t, err)
	assert.Equal(t, custom, got, "user files are trimmed and preferred over defaults")
}

func TestPromptStore_Load_UnknownPromptFails(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}

func TestPromptStore_Reload_PicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	first, err := store.Load(driven.PromptTranslatorSuffix)
	require.NoError(t, err)

	path := filepath.Join(dir, driven.PromptTranslatorSuffix+".txt")
	require.NoError(t, os.WriteFile(path, []byte("Tables:\n%s\n\nQ: %s\nSQLQuery: "), 0600))

	// Cache still serves the old content until invalidated.
	cached, err := store.Load(driven.PromptTranslatorSuffix)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()

	got, err := store.Load(driven.PromptTranslatorSuffix)
	require.NoError(t, err)
	assert.Contains(t, got, "Q: %s")
}
