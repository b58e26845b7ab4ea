package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

func TestRelevanceGateInDomain(t *testing.T) {
	gate := NewRelevanceGate(domain.DefaultRelevanceRules())

	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{"brand mention", "How many Nike shirts do we have?", true},
		{"attribute mention", "What sizes are available?", true},
		{"commerce verb", "What are we selling the most?", true},
		{"business phrase with context", "How many items in the inventory?", true},
		{"business phrase without context", "How many planets orbit the sun?", false},
		{"off topic", "What's the weather today?", false},
		{"unrelated subject", "Tell me about politics", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.InDomain(tt.question))
		})
	}
}

func TestRelevanceGateDenyListWins(t *testing.T) {
	gate := NewRelevanceGate(domain.DefaultRelevanceRules())

	// A deny-listed term rejects even when positive terms are present.
	denied := []string{
		"How many rainbow t-shirts do we have?",
		"What is the price of Nike shirts in this weather?",
		"Do we stock shirts with animals on them?",
	}
	for _, q := range denied {
		assert.False(t, gate.InDomain(q), "question %q should be rejected", q)
	}
}

func TestRelevanceGateCaseInsensitive(t *testing.T) {
	gate := NewRelevanceGate(domain.DefaultRelevanceRules())

	assert.True(t, gate.InDomain("HOW MANY NIKE SHIRTS?"))
	assert.False(t, gate.InDomain("WHAT IS THE WEATHER?"))
}
