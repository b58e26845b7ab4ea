package driven

import (
	"context"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

// QueryExecutor runs an already-translated structured query against the
// inventory store. The answer formatter uses this narrower capability when
// the translator hands back a query it never executed.
type QueryExecutor interface {
	// Execute runs a structured query and returns its tabular result.
	Execute(ctx context.Context, query string) (domain.TabularResult, error)
}

// QueryOracle turns a natural-language question into a structured query
// and/or executes it against the inventory store. The pipeline treats it as
// a black box: implementations may answer fully, return a query only, or
// return an executed result, and the response shape records which happened.
type QueryOracle interface {
	QueryExecutor

	// Translate submits a question to the translator, internally assembling
	// the few-shot prompt context, and returns whatever the translator
	// produced.
	Translate(ctx context.Context, question string) (domain.OracleResponse, error)
}
