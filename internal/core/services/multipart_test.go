package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bijilboby/TQuery/internal/core/domain"
)

func TestIsMultipartStrongMarkers(t *testing.T) {
	s := NewMultipartSplitter(domain.DefaultMultipartRules())

	multipart := []string{
		"How many Nike shirts do we have? Also what colors are available?",
		"Show me the Levi's stock plus the Adidas stock",
		"What about discounts for Van Huesen?",
	}
	for _, q := range multipart {
		assert.True(t, s.IsMultipart(q), "question %q should be multipart", q)
	}
}

func TestIsMultipartAndConnective(t *testing.T) {
	s := NewMultipartSplitter(domain.DefaultMultipartRules())

	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{
			"both halves are questions",
			"How many Nike shirts do we have and what colors are available for Adidas?",
			true,
		},
		{
			"second half is not a question",
			"How many shirts are red and made of cotton?",
			false,
		},
		{
			"colour pair idiom",
			"How many red and blue shirts do we have?",
			false,
		},
		{
			"size range idiom",
			"What is the stock for s and m sizes?",
			false,
		},
		{
			"no connective",
			"How many Nike shirts do we have?",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsMultipart(tt.question))
		})
	}
}

func TestSplitOrderAndRepair(t *testing.T) {
	s := NewMultipartSplitter(domain.DefaultMultipartRules())

	parts := s.Split("How many Nike shirts do we have and what colors are available for Adidas?")
	require.Len(t, parts, 2)
	assert.Equal(t, "how many nike shirts do we have", parts[0])
	assert.Equal(t, "what colors are available for adidas?", parts[1])
}

func TestSplitRepairsHeadlessFragments(t *testing.T) {
	s := NewMultipartSplitter(domain.DefaultMultipartRules())

	tests := []struct {
		name       string
		question   string
		wantPrefix string
	}{
		{"colour fragment", "How many Nike shirts do we have and colors available for adidas", "what colors "},
		{"discount fragment", "How many Levi's shirts are there and the discount rates", "what is the discount rate"},
		{"price fragment", "How many shirts do we have and price of adidas shirts", "what is the price of "},
		{"count fragment", "What colors does Nike come in and quantity of levi stock", "how many "},
		{"generic fragment", "What colors does Nike come in and the best seller", "what is "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := s.Split(tt.question)
			require.Len(t, parts, 2)
			assert.True(t, strings.HasPrefix(parts[1], tt.wantPrefix),
				"part %q should start with %q", parts[1], tt.wantPrefix)
		})
	}
}

// Decomposition is idempotent: no produced sub-question is itself multipart.
func TestSplitIdempotent(t *testing.T) {
	s := NewMultipartSplitter(domain.DefaultMultipartRules())

	questions := []string{
		"How many Nike shirts do we have and what colors are available for Adidas?",
		"What is the Levi's stock? Also what sizes does Van Huesen come in, plus the discount rates",
		"How many shirts do we have along with the total revenue, what about the brands we carry",
	}
	for _, q := range questions {
		for _, part := range s.Split(q) {
			assert.False(t, s.IsMultipart(part), "sub-question %q should not re-split", part)
		}
	}
}

func TestSplitNeverEmpty(t *testing.T) {
	s := NewMultipartSplitter(domain.DefaultMultipartRules())

	parts := s.Split("How many Nike shirts do we have?")
	require.Len(t, parts, 1)
	assert.Equal(t, "how many nike shirts do we have?", parts[0])
}
