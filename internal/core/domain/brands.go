package domain

import "strings"

// Brand is one of the carried t-shirt brands. Match is the lower-cased
// substring a question is scanned for; Display is the conversational name
// used in answers.
type Brand struct {
	Match   string
	Display string
}

// KnownBrands lists the four brands the inventory carries.
var KnownBrands = []Brand{
	{Match: "nike", Display: "Nike"},
	{Match: "adidas", Display: "Adidas"},
	{Match: "levi", Display: "Levi's"},
	{Match: "van huesen", Display: "Van Huesen"},
}

// DetectBrand returns the known brand mentioned in the question, if any.
func DetectBrand(question string) (Brand, bool) {
	q := strings.ToLower(question)
	for _, b := range KnownBrands {
		if strings.Contains(q, b.Match) {
			return b, true
		}
	}
	return Brand{}, false
}

// Token lists for absent-brand extraction. When a query returns no data, the
// question is scanned for a token that looks like an unknown brand name so
// the not-found message can name it. Scanning keeps the original case of the
// token but compares lower-cased.
var (
	// brandStopwords is the base skip list: known brands plus common query words.
	brandStopwords = []string{
		"nike", "adidas", "levi", "van huesen", "how", "many", "do", "we",
		"have", "the", "what", "are", "there", "shirts", "t-shirts", "brand",
	}

	// brandStopwordsWide is the wider skip list used after a zero quantity
	// result, where more of the question is known to be boilerplate.
	brandStopwordsWide = []string{
		"nike", "adidas", "levi", "van", "huesen", "how", "many", "do", "we",
		"have", "the", "what", "are", "there", "shirts", "t-shirts", "is",
		"total", "count", "brand",
	}

	// brandConnectives never name a brand regardless of length.
	brandConnectives = []string{"and", "for", "from", "with"}
)

// AbsentBrand scans the question for the first token that could name an
// unknown brand: not a stopword, longer than two characters, not purely
// numeric and not a connective. Returns the empty string when every token
// is accounted for.
func AbsentBrand(question string) string {
	for _, word := range strings.Fields(question) {
		if tok := brandToken(word, brandStopwords); tok != "" {
			return tok
		}
	}
	return ""
}

// AbsentBrandWide is AbsentBrand with the wider stopword list, collecting
// every candidate token into a single space-joined name. Multi-word unknown
// brands ("Ding Don") survive this pass intact.
func AbsentBrandWide(question string) string {
	var parts []string
	for _, word := range strings.Fields(question) {
		if tok := brandToken(word, brandStopwordsWide); tok != "" {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, " ")
}

// brandToken strips edge punctuation and applies the skip rules, returning
// the cleaned original-case token or "".
func brandToken(word string, stopwords []string) string {
	cleaned := strings.Trim(word, "?.,!")
	lower := strings.ToLower(cleaned)
	if len(lower) <= 2 || isNumeric(lower) {
		return ""
	}
	for _, sw := range stopwords {
		if lower == sw {
			return ""
		}
	}
	for _, c := range brandConnectives {
		if lower == c {
			return ""
		}
	}
	return cleaned
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
