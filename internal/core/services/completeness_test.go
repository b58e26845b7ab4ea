package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

func TestCompletenessShortFragments(t *testing.T) {
	v := NewCompletenessValidator(domain.DefaultCompletenessRules())

	// Two words or fewer are keyword fragments unless they carry a
	// recognised interrogative phrase.
	tests := []struct {
		question string
		want     bool
	}{
		{"nike", false},
		{"nike shirts", false},
		{"red large", false},
		{"how many", true},
		{"what is", true},
		{"count", true},
		{"list", true},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsComplete(tt.question))
		})
	}
}

func TestCompletenessMalformedPatterns(t *testing.T) {
	v := NewCompletenessValidator(domain.DefaultCompletenessRules())

	malformed := []string{
		"how my colors for levi have",
		"what my inventory total is",
		"how my shirts have",
		"colors for nike shirts have",
	}
	for _, q := range malformed {
		assert.False(t, v.IsComplete(q), "question %q should be rejected", q)
	}
}

func TestCompletenessHowOpenings(t *testing.T) {
	v := NewCompletenessValidator(domain.DefaultCompletenessRules())

	// "how ..." questions longer than three words must follow a whitelisted
	// opening.
	assert.True(t, v.IsComplete("how many nike shirts do we have"))
	assert.True(t, v.IsComplete("how much revenue would we generate"))
	assert.False(t, v.IsComplete("how colors nike shirts available"))
}

func TestCompletenessFailsOpen(t *testing.T) {
	v := NewCompletenessValidator(domain.DefaultCompletenessRules())

	// Ambiguous but plausible requests default to complete.
	accepted := []string{
		"What colors are available for Adidas t-shirts?",
		"Show me the total stock for Levi's",
		"nike shirts in stock right now",
		"list all brands we carry",
		"any red shirts available?",
	}
	for _, q := range accepted {
		assert.True(t, v.IsComplete(q), "question %q should be accepted", q)
	}
}

func TestCompletenessMalformedOpenings(t *testing.T) {
	v := NewCompletenessValidator(domain.DefaultCompletenessRules())

	assert.False(t, v.IsComplete("what my shirts are worth"))
	assert.False(t, v.IsComplete("which my brands sell best"))
}
