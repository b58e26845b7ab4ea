package domain

import "strings"

// Markers delimiting sections of the translator's output. The translator is
// prompted to answer in a Question/SQLQuery/SQLResult/Answer transcript, but
// frequently stops partway through; the response shape records how far it got.
const (
	MarkerAnswer = "Answer:"
	MarkerQuery  = "SQLQuery:"
	MarkerResult = "SQLResult:"
)

// queryKeyword is the execution keyword every runnable structured query
// starts with. A "query" line that does not start with it is a rejection
// message in disguise, not SQL.
const queryKeyword = "SELECT"

// ResponseShape classifies an oracle response into one of the known forms.
type ResponseShape int

const (
	// ShapeUnrecognised means the response matched no known form and must be
	// passed through unmodified rather than dropped.
	ShapeUnrecognised ResponseShape = iota

	// ShapeAnswerEmbedded means a fully-formed natural-language answer
	// follows an answer marker.
	ShapeAnswerEmbedded

	// ShapeQueryOnly means translation produced a structured query but
	// execution did not happen.
	ShapeQueryOnly

	// ShapeBareQuery means the whole response is a structured query with no
	// markers at all.
	ShapeBareQuery

	// ShapeTabular means the response already carries an executed tabular
	// result.
	ShapeTabular
)

// String returns a short name for the shape, used in trace logs.
func (s ResponseShape) String() string {
	switch s {
	case ShapeAnswerEmbedded:
		return "answer-embedded"
	case ShapeQueryOnly:
		return "query-only"
	case ShapeBareQuery:
		return "bare-query"
	case ShapeTabular:
		return "tabular"
	default:
		return "unrecognised"
	}
}

// OracleResponse is the query oracle's output for one (sub-)question. It is
// polymorphic over the shapes above: Text holds translator output, Result
// holds an already-executed tabular result. Exactly one of the two is
// meaningful, decided by Shape.
type OracleResponse struct {
	Text   string
	Result *TabularResult
}

// TabularResponse wraps an executed result as an oracle response.
func TabularResponse(res TabularResult) OracleResponse {
	return OracleResponse{Result: &res}
}

// TextResponse wraps raw translator output as an oracle response.
func TextResponse(text string) OracleResponse {
	return OracleResponse{Text: text}
}

// Shape classifies the response once, up front. Answer formatting dispatches
// on the result instead of re-testing string markers at every branch.
func (r OracleResponse) Shape() ResponseShape {
	if r.Result != nil {
		return ShapeTabular
	}
	if strings.Contains(r.Text, MarkerAnswer) {
		return ShapeAnswerEmbedded
	}
	if strings.Contains(r.Text, MarkerQuery) && !strings.Contains(r.Text, MarkerResult) {
		return ShapeQueryOnly
	}
	if IsQuery(r.Text) {
		return ShapeBareQuery
	}
	return ShapeUnrecognised
}

// EmbeddedAnswer returns the text following the last answer marker, trimmed.
// Only meaningful for ShapeAnswerEmbedded.
func (r OracleResponse) EmbeddedAnswer() string {
	parts := strings.Split(r.Text, MarkerAnswer)
	return strings.TrimSpace(parts[len(parts)-1])
}

// QueryLine extracts the structured-query line that follows a query marker.
// Returns the empty string when no such line exists.
func (r OracleResponse) QueryLine() string {
	for _, line := range strings.Split(r.Text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, MarkerQuery) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, MarkerQuery))
		}
	}
	return ""
}

// IsQuery reports whether text begins with the query-execution keyword.
func IsQuery(text string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(text)), queryKeyword)
}
