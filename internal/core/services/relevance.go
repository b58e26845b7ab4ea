package services

import (
	"strings"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

// RelevanceGate decides whether a question plausibly concerns the inventory
// domain. It prefers false negatives over false positives: misrouting a
// clearly off-topic question to the oracle wastes a network round-trip, so
// the deny-list is checked first and wins outright.
type RelevanceGate struct {
	rules domain.RelevanceRules
}

// NewRelevanceGate creates a gate over the given rule table.
func NewRelevanceGate(rules domain.RelevanceRules) *RelevanceGate {
	return &RelevanceGate{rules: rules}
}

// InDomain reports whether the question concerns the inventory domain.
// Matching is case-insensitive substring search. A deny-list hit rejects
// regardless of any positive match. Otherwise the question is accepted on a
// positive term, or on a business phrase co-occurring with a context word.
func (g *RelevanceGate) InDomain(question string) bool {
	q := strings.ToLower(question)

	for _, term := range g.rules.DenyTerms {
		if strings.Contains(q, term) {
			return false
		}
	}

	for _, term := range g.rules.PositiveTerms {
		if strings.Contains(q, term) {
			return true
		}
	}

	return containsAny(q, g.rules.BusinessTerms) && containsAny(q, g.rules.ContextTerms)
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
