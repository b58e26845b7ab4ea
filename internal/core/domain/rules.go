package domain

// The pipeline's gates are pure functions over the rule tables below.
// Keeping the tables as data rather than inline literals lets the policy be
// tested and extended independently of the control flow that applies it.

// RelevanceRules configures the domain relevance gate.
type RelevanceRules struct {
	// PositiveTerms are inventory-domain words: product nouns, attributes,
	// known brand, colour and size values and commerce verbs. Any match
	// accepts the question outright.
	PositiveTerms []string

	// DenyTerms are clearly unrelated topics. Any match rejects the question
	// regardless of other matches.
	DenyTerms []string

	// BusinessTerms are generic quantity phrases that only count when the
	// question also mentions a context term.
	BusinessTerms []string

	// ContextTerms are the inventory-context words a business term must
	// co-occur with.
	ContextTerms []string
}

// DefaultRelevanceRules returns the production relevance table.
func DefaultRelevanceRules() RelevanceRules {
	return RelevanceRules{
		PositiveTerms: []string{
			"tshirt", "t-shirt", "t shirt", "shirt", "inventory", "stock", "quantity",
			"price", "cost", "revenue", "discount", "brand", "color", "size",
			"nike", "adidas", "levi", "van huesen", "red", "blue", "black", "white",
			"xs", "small", "medium", "large", "extra large",
			"sell", "selling", "available", "clothes", "clothing", "apparel",
		},
		DenyTerms: []string{
			"rainbow", "weather", "temperature", "time", "date", "politics", "news",
			"sports", "movies", "music", "food", "cooking", "travel", "animals",
			"books", "science", "math", "history", "geography", "biology", "chemistry",
		},
		BusinessTerms: []string{"how many", "total", "sum", "count", "store", "business"},
		ContextTerms: []string{
			"shirt", "tshirt", "t-shirt", "clothes", "clothing", "apparel", "inventory",
		},
	}
}

// CompletenessRules configures the completeness validator.
type CompletenessRules struct {
	// ShortPhraseAllowList admits questions of two words or fewer when one of
	// these interrogative phrases is present.
	ShortPhraseAllowList []string

	// MalformedPatterns are regular expressions matching known-broken
	// grammatical shapes. This is an explicit, extensible list reverse
	// engineered from observed inputs, not a grammar checker.
	MalformedPatterns []string

	// CorrectHowOpenings whitelist the valid openings of a "how ..." question.
	CorrectHowOpenings []string

	// MalformedOpenings reject questions starting with these fragments.
	MalformedOpenings []string

	// QuestionWords mark interrogative intent within the first three words.
	QuestionWords []string

	// ImperativePhrases mark command-style requests anywhere in the text.
	ImperativePhrases []string
}

// DefaultCompletenessRules returns the production completeness table.
func DefaultCompletenessRules() CompletenessRules {
	return CompletenessRules{
		ShortPhraseAllowList: []string{
			"how many", "how much", "what is", "what are", "which",
			"where", "when", "why", "who", "total", "count", "list",
		},
		MalformedPatterns: []string{
			// "how my [something] have"
			`how\s+my\s+\w+.*\s+have`,
			// "what my [something] is"
			`what\s+my\s+\w+.*\s+is`,
			// incomplete "how" question without proper structure
			`how\s+\w+\s+for\s+\w+.*\s+have$`,
			// mixed up word order around "colors for"
			`colors?\s+for\s+\w+.*\s+have$`,
		},
		CorrectHowOpenings: []string{
			"how many", "how much", "how do", "how can", "how will",
			"how would", "how should", "how is", "how are",
		},
		MalformedOpenings: []string{"how my", "what my", "which my"},
		QuestionWords: []string{
			"how", "what", "which", "where", "when", "why", "who", "can", "do", "is", "are",
		},
		ImperativePhrases: []string{"show me", "tell me", "give me", "list", "find", "get"},
	}
}

// MultipartRules configures multi-part question detection and splitting.
type MultipartRules struct {
	// StrongMarkers immediately mark a question as multi-part.
	StrongMarkers []string

	// NonSplittingIdioms are "and" phrases joining a single concept, such as
	// fixed colour pairs and size ranges. Their presence blocks splitting.
	NonSplittingIdioms []string

	// QuestionIndicators must appear in both halves of an "and" split for the
	// split to count as two questions.
	QuestionIndicators []string

	// Separators is the full marker set splitting iterates over.
	Separators []string
}

// DefaultMultipartRules returns the production multi-part table.
func DefaultMultipartRules() MultipartRules {
	return MultipartRules{
		StrongMarkers: []string{
			"also", "as well", "plus", "additionally", "furthermore",
			"along with", "together with", "what about", "how about",
		},
		NonSplittingIdioms: []string{
			"red and blue", "black and white", "blue and red", "white and black",
			"s and m", "m and l", "l and xl", "xs and s", "small and medium",
			"medium and large", "large and xl",
		},
		QuestionIndicators: []string{
			"how many", "how much", "what", "which", "where", "when",
		},
		Separators: []string{
			" and ", " also ", " as well", " plus ", " additionally ",
			" furthermore ", " along with ", " together with ",
			" what about ", " how about ",
		},
	}
}
