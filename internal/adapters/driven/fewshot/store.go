// Package fewshot provides the built-in few-shot example corpus and a
// lexical similarity selector over it.
package fewshot

import (
	"math"
	"sort"
	"strings"

	"github.com/bijilboby/TQuery/internal/core/domain"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
)

// Store selects few-shot examples by lexical similarity. Selection uses
// cosine similarity over term-frequency vectors of the question text; the
// corpus is small enough that a linear scan per question is fine.
type Store struct {
	examples []domain.Example
	vectors  []map[string]float64
}

var _ driven.ExampleStore = (*Store)(nil)

// NewStore creates a selector over the built-in corpus.
func NewStore() *Store {
	return NewStoreWith(corpus)
}

// NewStoreWith creates a selector over a custom example set.
func NewStoreWith(examples []domain.Example) *Store {
	s := &Store{
		examples: examples,
		vectors:  make([]map[string]float64, len(examples)),
	}
	for i, ex := range examples {
		// Index the full example text, not just the question, so a query
		// mentioning a column or value still finds its family.
		s.vectors[i] = termVector(ex.Question + " " + ex.SQLQuery)
	}
	return s
}

// Nearest returns the k examples most similar to the question, most similar
// first. Ties keep corpus order.
func (s *Store) Nearest(question string, k int) []domain.Example {
	if k <= 0 || len(s.examples) == 0 {
		return nil
	}

	qv := termVector(question)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(s.examples))
	for i, v := range s.vectors {
		ranked[i] = scored{index: i, score: cosine(qv, v)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]domain.Example, k)
	for i := 0; i < k; i++ {
		out[i] = s.examples[ranked[i].index]
	}
	return out
}

// All returns the full corpus in its stored order.
func (s *Store) All() []domain.Example {
	return s.examples
}

// termVector builds a lowercase term-frequency vector from text.
func termVector(text string) map[string]float64 {
	v := make(map[string]float64)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, "?.,!'\"()")
		if len(tok) < 2 {
			continue
		}
		v[tok]++
	}
	return v
}

// cosine computes the cosine similarity of two term-frequency vectors.
func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for t, w := range a {
		na += w * w
		if bw, ok := b[t]; ok {
			dot += w * bw
		}
	}
	for _, w := range b {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
