// Package oracle provides the query oracle: it assembles the few-shot
// translator prompt, submits questions to the LLM and executes the resulting
// queries against the inventory store.
package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/bijilboby/TQuery/internal/core/domain"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
	"github.com/bijilboby/TQuery/internal/logger"
)

// Ensure SQLOracle implements the interface.
var _ driven.QueryOracle = (*SQLOracle)(nil)

// Default prompt assembly parameters.
const (
	// DefaultFewShotCount is how many examples go into each prompt.
	DefaultFewShotCount = 2

	// DefaultResultLimit is the row limit the prompt tells the translator
	// to apply when the question does not specify one.
	DefaultResultLimit = 5

	// generateMaxTokens bounds the completion. Translator output is a query
	// plus a sentence or two, never long-form text.
	generateMaxTokens = 1024

	// generateTemperature keeps translation near-deterministic.
	generateTemperature = 0.2
)

// defaultPrefix is the fallback instruction header when no PromptStore is
// configured. It must stay in sync with the prompt store's embedded default.
const defaultPrefix = `You are a helpful t-shirt inventory assistant. Given a question about t-shirt inventory, create a SQLite query to get the data, then provide a natural, conversational answer.

Guidelines:
- Unless specified, query for at most %d results using LIMIT clause
- Only query columns needed to answer the question
- Use date('now') for current date questions
- Pay attention to table relationships and column names

Make your answers conversational and helpful:
- Use natural language like "You have X shirts" instead of just "X"
- Include units and context (e.g., "$1,200" instead of "1200")
- For zero results, suggest alternatives or explain what brands/options are available
- Use proper formatting for lists and monetary values

Use the following format:

Question: Question here
SQLQuery: Query to run with no pre-amble
SQLResult: Result of the SQLQuery
Answer: Natural, conversational answer based on the SQLResult`

// defaultSuffix is the fallback prompt closing when no PromptStore is
// configured.
const defaultSuffix = `Only use the following tables:
%s

Question: %s
SQLQuery: `

// Config holds construction parameters for the oracle.
type Config struct {
	// FewShotCount is how many examples to select per question
	// (default: DefaultFewShotCount).
	FewShotCount int

	// ResultLimit is the row limit stated in the prompt
	// (default: DefaultResultLimit).
	ResultLimit int

	// Prompts optionally overrides the built-in prompt templates.
	Prompts driven.PromptStore
}

// SQLOracle translates questions through the LLM and executes queries
// against the inventory store.
type SQLOracle struct {
	llm      driven.LLMService
	store    driven.InventoryStore
	examples driven.ExampleStore
	prompts  driven.PromptStore
	fewShots int
	limit    int
}

// New creates an oracle over the given LLM, inventory store and example
// corpus.
func New(llm driven.LLMService, store driven.InventoryStore, examples driven.ExampleStore, cfg Config) *SQLOracle {
	if cfg.FewShotCount <= 0 {
		cfg.FewShotCount = DefaultFewShotCount
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	return &SQLOracle{
		llm:      llm,
		store:    store,
		examples: examples,
		prompts:  cfg.Prompts,
		fewShots: cfg.FewShotCount,
		limit:    cfg.ResultLimit,
	}
}

// Translate submits the question to the LLM behind the assembled few-shot
// prompt and returns whatever the model produced. The response text may be a
// bare query, a query with an embedded answer, or something else entirely;
// classification is the caller's concern.
func (o *SQLOracle) Translate(ctx context.Context, question string) (domain.OracleResponse, error) {
	prompt, err := o.buildPrompt(ctx, question)
	if err != nil {
		return domain.OracleResponse{}, err
	}

	text, err := o.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return domain.OracleResponse{}, fmt.Errorf("%w: %v", domain.ErrOracleFailure, err)
	}

	return domain.TextResponse(strings.TrimSpace(text)), nil
}

// Execute runs a translated query against the inventory store.
func (o *SQLOracle) Execute(ctx context.Context, query string) (domain.TabularResult, error) {
	logger.Trace("SQL QUERY", "%s", query)

	result, err := o.store.Query(ctx, query)
	if err != nil {
		return domain.TabularResult{}, err
	}

	logger.Trace("SQL RESULT", "%s", result.String())
	return result, nil
}

// buildPrompt assembles prefix, selected examples, schema and question into
// the translator prompt.
func (o *SQLOracle) buildPrompt(ctx context.Context, question string) (string, error) {
	tableInfo, err := o.store.TableInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("reading table info: %w", err)
	}

	prefix := o.loadPrompt(driven.PromptTranslatorPrefix, defaultPrefix)
	suffix := o.loadPrompt(driven.PromptTranslatorSuffix, defaultSuffix)

	var b strings.Builder
	fmt.Fprintf(&b, prefix, o.limit)
	b.WriteString("\n")

	for _, ex := range o.examples.Nearest(question, o.fewShots) {
		fmt.Fprintf(&b, "\nQuestion: %s\nSQLQuery: %s\nSQLResult: %s\nAnswer: %s\n",
			ex.Question, ex.SQLQuery, ex.SQLResult, ex.Answer)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, suffix, tableInfo, question)
	return b.String(), nil
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (o *SQLOracle) loadPrompt(name, fallback string) string {
	if o.prompts == nil {
		return fallback
	}
	prompt, err := o.prompts.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
