package services

import (
	"regexp"
	"strings"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

// CompletenessValidator decides whether a question is a grammatically
// complete request rather than a keyword fragment or a known-broken phrase.
// It is a precision-over-recall heuristic gate, not a grammar engine:
// ambiguous input defaults to complete, only the explicit malformed shapes
// fail closed.
type CompletenessValidator struct {
	rules     domain.CompletenessRules
	malformed []*regexp.Regexp
}

// NewCompletenessValidator creates a validator over the given rule table.
// The malformed patterns are compiled once; an invalid pattern is dropped
// rather than taking the gate down.
func NewCompletenessValidator(rules domain.CompletenessRules) *CompletenessValidator {
	v := &CompletenessValidator{rules: rules}
	for _, pattern := range rules.MalformedPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		v.malformed = append(v.malformed, re)
	}
	return v
}

// IsComplete reports whether the question is well-formed enough to translate.
// The policy is evaluated in a fixed order; see the rule table for the term
// sets each step consults.
func (v *CompletenessValidator) IsComplete(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))
	words := strings.Fields(q)

	// Very short input is a keyword fragment unless it carries a recognised
	// interrogative phrase.
	if len(words) <= 2 {
		return containsAny(q, v.rules.ShortPhraseAllowList)
	}

	for _, re := range v.malformed {
		if re.MatchString(q) {
			return false
		}
	}

	if strings.HasPrefix(q, "how ") && len(words) > 3 && !v.correctHowOpening(q) {
		return false
	}

	for _, opening := range v.rules.MalformedOpenings {
		if strings.HasPrefix(q, opening) {
			return false
		}
	}

	return v.hasQuestionWord(words) ||
		containsAny(q, v.rules.ImperativePhrases) ||
		strings.Contains(q, "?") ||
		len(words) >= 4
}

// correctHowOpening reports whether a "how ..." question starts with one of
// the whitelisted valid openings.
func (v *CompletenessValidator) correctHowOpening(q string) bool {
	for _, opening := range v.rules.CorrectHowOpenings {
		if strings.HasPrefix(q, opening) {
			return true
		}
	}
	return false
}

// hasQuestionWord reports whether any of the first three words is a
// recognised question word.
func (v *CompletenessValidator) hasQuestionWord(words []string) bool {
	limit := len(words)
	if limit > 3 {
		limit = 3
	}
	for _, w := range words[:limit] {
		for _, qw := range v.rules.QuestionWords {
			if w == qw {
				return true
			}
		}
	}
	return false
}
