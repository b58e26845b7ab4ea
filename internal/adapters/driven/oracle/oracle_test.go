package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bijilboby/TQuery/internal/adapters/driven/fewshot"
	"github.com/bijilboby/TQuery/internal/core/domain"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
)

// mockLLM captures the prompt and returns a canned completion.
type mockLLM struct {
	reply   string
	err     error
	prompts []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

func (m *mockLLM) ModelName() string          { return "mock" }
func (m *mockLLM) Ping(context.Context) error { return nil }
func (m *mockLLM) Close() error               { return nil }

// mockInventory is a fixed-schema, fixed-result inventory store.
type mockInventory struct {
	result  domain.TabularResult
	err     error
	queries []string
}

func (m *mockInventory) Query(_ context.Context, query string) (domain.TabularResult, error) {
	m.queries = append(m.queries, query)
	return m.result, m.err
}

func (m *mockInventory) TableInfo(context.Context) (string, error) {
	return "CREATE TABLE t_shirts (brand TEXT, color TEXT, size TEXT, price INTEGER, stock_quantity INTEGER)", nil
}

func (m *mockInventory) Close() error { return nil }

func newTestOracle(llm *mockLLM, inv *mockInventory) *SQLOracle {
	return New(llm, inv, fewshot.NewStore(), Config{})
}

func TestTranslateAssemblesPrompt(t *testing.T) {
	llm := &mockLLM{reply: "SELECT SUM(stock_quantity) FROM t_shirts WHERE brand = 'Nike'"}
	inv := &mockInventory{}
	o := newTestOracle(llm, inv)

	resp, err := o.Translate(context.Background(), "How many Nike t-shirts do we have in total?")
	require.NoError(t, err)
	require.Len(t, llm.prompts, 1)
	prompt := llm.prompts[0]

	// Instruction header with the resolved result limit.
	assert.Contains(t, prompt, "t-shirt inventory assistant")
	assert.Contains(t, prompt, "at most 5 results")
	assert.NotContains(t, prompt, "%d")

	// Schema and question close the prompt.
	assert.Contains(t, prompt, "CREATE TABLE t_shirts")
	assert.Contains(t, prompt, "Question: How many Nike t-shirts do we have in total?")
	assert.True(t, len(prompt) > 0 && prompt[len(prompt)-1:] == " ",
		"prompt must end at the open SQLQuery slot")

	// Few-shot examples are included with all four fields.
	assert.Contains(t, prompt, "SQLResult: [(Decimal('1063'),)]")

	assert.Equal(t, domain.ShapeBareQuery, resp.Shape())
}

func TestTranslateReturnsModelTextVerbatim(t *testing.T) {
	full := "SQLQuery: SELECT DISTINCT color FROM t_shirts WHERE brand = 'Adidas'\n" +
		"SQLResult: [('Red',), ('Blue',)]\n" +
		"Answer: Adidas t-shirts come in Red and Blue."
	llm := &mockLLM{reply: full + "\n"}
	o := newTestOracle(llm, &mockInventory{})

	resp, err := o.Translate(context.Background(), "What colors are available for Adidas?")
	require.NoError(t, err)
	assert.Equal(t, full, resp.Text, "completions are trimmed, never rewritten")
	assert.Equal(t, domain.ShapeAnswerEmbedded, resp.Shape())
}

func TestTranslateWrapsLLMFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("overloaded")}
	o := newTestOracle(llm, &mockInventory{})

	_, err := o.Translate(context.Background(), "How many Nike shirts do we have?")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOracleFailure)
	assert.Contains(t, err.Error(), "overloaded")
}

func TestExecuteDelegatesToStore(t *testing.T) {
	inv := &mockInventory{
		result: domain.TabularResult{Rows: []domain.Row{{int64(1063)}}},
	}
	o := newTestOracle(&mockLLM{}, inv)

	res, err := o.Execute(context.Background(), "SELECT SUM(stock_quantity) FROM t_shirts")
	require.NoError(t, err)
	assert.Equal(t, "[(1063,)]", res.String())
	assert.Equal(t, []string{"SELECT SUM(stock_quantity) FROM t_shirts"}, inv.queries)
}

func TestExecutePropagatesStoreError(t *testing.T) {
	inv := &mockInventory{err: errors.New("no such column: sizes")}
	o := newTestOracle(&mockLLM{}, inv)

	_, err := o.Execute(context.Background(), "SELECT sizes FROM t_shirts")
	assert.Error(t, err)
}

func TestConfigOverrides(t *testing.T) {
	llm := &mockLLM{reply: "SELECT 1"}
	o := New(llm, &mockInventory{}, fewshot.NewStore(), Config{FewShotCount: 1, ResultLimit: 3})

	_, err := o.Translate(context.Background(), "How many Nike shirts do we have?")
	require.NoError(t, err)
	assert.Contains(t, llm.prompts[0], "at most 3 results")
}
