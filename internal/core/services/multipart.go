package services

import (
	"strings"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

// MultipartSplitter detects questions that bundle several independent
// questions and decomposes them into ordered sub-questions.
type MultipartSplitter struct {
	rules domain.MultipartRules
}

// NewMultipartSplitter creates a splitter over the given rule table.
func NewMultipartSplitter(rules domain.MultipartRules) *MultipartSplitter {
	return &MultipartSplitter{rules: rules}
}

// IsMultipart reports whether the question bundles multiple questions.
// Strong conjunctive markers decide immediately. A bare " and " only counts
// when it is not part of a single-concept idiom (colour pairs, size ranges)
// and both halves independently read as questions.
func (s *MultipartSplitter) IsMultipart(question string) bool {
	q := strings.ToLower(question)

	if containsAny(q, s.rules.StrongMarkers) {
		return true
	}

	if !strings.Contains(q, " and ") {
		return false
	}
	if containsAny(q, s.rules.NonSplittingIdioms) {
		return false
	}

	parts := strings.SplitN(q, " and ", 2)
	if len(parts) < 2 {
		return false
	}
	first := strings.TrimSpace(parts[0])
	second := strings.TrimSpace(parts[1])
	return containsAny(first, s.rules.QuestionIndicators) &&
		containsAny(second, s.rules.QuestionIndicators)
}

// Split decomposes the question into ordered sub-questions, each repaired
// into a standalone interrogative. The result always has at least one
// element; callers treat a single-element result as not multipart.
func (s *MultipartSplitter) Split(question string) []string {
	parts := []string{strings.ToLower(question)}

	// Iterative split on every separator; fragments produced by one
	// separator may still contain another.
	for _, sep := range s.rules.Separators {
		var next []string
		for _, part := range parts {
			if strings.Contains(part, sep) {
				for _, piece := range strings.Split(part, sep) {
					if trimmed := strings.TrimSpace(piece); trimmed != "" {
						next = append(next, trimmed)
					}
				}
			} else {
				next = append(next, part)
			}
		}
		parts = next
	}

	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cleaned = append(cleaned, s.repair(part))
	}
	return cleaned
}

// questionOpenings are the leading words a standalone question starts with.
var questionOpenings = []string{"how", "what", "which", "where", "when", "why", "who"}

// repair prefixes a synthesised interrogative onto a fragment that lost its
// question head during splitting. The prefix is picked by lightweight
// content sniffing so "colors available for adidas" becomes a colour
// question rather than a generic one.
func (s *MultipartSplitter) repair(part string) string {
	for _, opening := range questionOpenings {
		if strings.HasPrefix(part, opening) {
			return part
		}
	}

	switch {
	case strings.Contains(part, "color") || strings.Contains(part, "colors"):
		return "what colors " + part
	case strings.Contains(part, "discount") || strings.Contains(part, "rate"):
		return "what is the discount rate"
	case strings.Contains(part, "price") || strings.Contains(part, "cost"):
		return "what is the price of " + part
	case strings.Contains(part, "many") || strings.Contains(part, "count") || strings.Contains(part, "quantity"):
		return "how many " + part
	default:
		return "what is " + part
	}
}
