package domain

import "strings"

// Intent tags what kind of answer a question expects. It keys the answer
// formatting strategy applied to a tabular result.
type Intent int

const (
	// IntentGeneric applies plain cleanup formatting.
	IntentGeneric Intent = iota

	// IntentQuantity is a "how many" stock count question.
	IntentQuantity

	// IntentColours asks which colours are available.
	IntentColours

	// IntentTopBrand asks which brand has the most or highest of something.
	IntentTopBrand

	// IntentBrandList asks which brands are carried.
	IntentBrandList
)

// String returns a short name for the intent, used in trace logs.
func (i Intent) String() string {
	switch i {
	case IntentQuantity:
		return "quantity"
	case IntentColours:
		return "colours"
	case IntentTopBrand:
		return "top-brand"
	case IntentBrandList:
		return "brand-list"
	default:
		return "generic"
	}
}

// DetectIntent classifies a question by keyword. Detection is mutually
// exclusive in practice, but the evaluation order below resolves the rare
// overlap deterministically and must stay fixed to keep answers stable:
// quantity, then colours, then top-brand, then brand-list, then generic.
func DetectIntent(question string) Intent {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "how many"):
		return IntentQuantity
	case strings.Contains(q, "color") || strings.Contains(q, "colors"):
		return IntentColours
	case strings.Contains(q, "which brand has the most") || strings.Contains(q, "which brand has the highest"):
		return IntentTopBrand
	case strings.Contains(q, "what brand") ||
		(strings.Contains(q, "which brand") && !strings.Contains(q, "most")):
		return IntentBrandList
	default:
		return IntentGeneric
	}
}
