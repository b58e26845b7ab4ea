package driven

import "github.com/bijilboby/TQuery/internal/core/domain"

// ExampleStore selects few-shot examples for the translator prompt. The
// corpus is read-only after initialisation and may be shared across
// concurrent requests without synchronisation.
type ExampleStore interface {
	// Nearest returns the k examples most similar to the question, most
	// similar first. Fewer than k are returned when the corpus is smaller.
	Nearest(question string, k int) []domain.Example

	// All returns the full corpus in its stored order.
	All() []domain.Example
}
