package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bijilboby/TQuery/internal/core/domain"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
	"github.com/bijilboby/TQuery/internal/logger"
)

// Answer texts for empty results.
const (
	msgNotFoundBrand = "I couldn't find any t-shirts from the brand '%s' in your inventory. We currently carry Nike, Adidas, Levi, and Van Huesen brands."
	msgNotFound      = "I couldn't find any matching t-shirts in your inventory."
	msgNoColourInfo  = "No color information found."
)

// quantityTemplates are the brand-specific phrasings for stock counts,
// keyed by the brand match term.
var quantityTemplates = map[string]string{
	"nike":       "You have a total of %s Nike t-shirts in stock.",
	"adidas":     "You have %s Adidas t-shirts in stock.",
	"levi":       "You have %s Levi's t-shirts in your inventory.",
	"van huesen": "You have %s Van Huesen t-shirts in stock.",
}

// resultCleaner strips the punctuation of the parenthesized-row convention
// and the decimal-type marker from a stringified result, leaving bare
// whitespace-separated values.
var resultCleaner = strings.NewReplacer(
	"[", "", "]", "", "(", "", ")", "", ",", "", "'", "", "Decimal", "",
)

// quotedToken matches single-quoted values in a stringified result.
var quotedToken = regexp.MustCompile(`'([^']+)'`)

// topBrandPair matches a ('name', Decimal('quantity')) pair.
var topBrandPair = regexp.MustCompile(`'([^']+)'.*?Decimal\('(\d+)'\)`)

// formatter renders one question intent from a tabular result.
type formatter func(question string, res domain.TabularResult) string

// Normaliser converts a raw oracle response into a conversational sentence.
// It never fails: malformed oracle output degrades to a cleaned-up string or
// an explicit not-found message. Formatting strategies are dispatched on the
// detected question intent.
type Normaliser struct {
	executor   driven.QueryExecutor
	strategies map[domain.Intent]formatter
}

// NewNormaliser creates a normaliser. The executor runs structured queries
// the translator produced but never executed.
func NewNormaliser(executor driven.QueryExecutor) *Normaliser {
	n := &Normaliser{executor: executor}
	n.strategies = map[domain.Intent]formatter{
		domain.IntentQuantity:  n.formatQuantity,
		domain.IntentColours:   n.formatColours,
		domain.IntentTopBrand:  n.formatTopBrand,
		domain.IntentBrandList: n.formatBrandList,
		domain.IntentGeneric:   n.formatGeneric,
	}
	return n
}

// Normalise produces the final answer text for one (sub-)question from
// whatever the oracle handed back. The response shape is classified once up
// front; each shape has one handling rule.
func (n *Normaliser) Normalise(ctx context.Context, question string, resp domain.OracleResponse) string {
	shape := resp.Shape()
	logger.Debug("Response shape: %s", shape)

	switch shape {
	case domain.ShapeAnswerEmbedded:
		// The derived query is logged for audit but never returned.
		if q := resp.QueryLine(); q != "" {
			logger.Trace("SQL QUERY", "%s", q)
		}
		return resp.EmbeddedAnswer()

	case domain.ShapeQueryOnly:
		query := resp.QueryLine()
		if !domain.IsQuery(query) {
			// The "query" line is a rejection message in disguise; return
			// the whole response rather than executing prose.
			return resp.Text
		}
		return n.executeAndFormat(ctx, question, query)

	case domain.ShapeBareQuery:
		return n.executeAndFormat(ctx, question, strings.TrimSpace(resp.Text))

	case domain.ShapeTabular:
		return n.FormatResult(question, *resp.Result)

	default:
		// Unrecognised output may still be a useful answer; never drop it.
		return resp.Text
	}
}

// executeAndFormat runs a structured query the translator left unexecuted
// and formats its result.
func (n *Normaliser) executeAndFormat(ctx context.Context, question, query string) string {
	logger.Trace("SQL QUERY", "%s", query)
	if n.executor == nil {
		return fmt.Sprintf("Error executing query: %v", domain.ErrStoreUnavailable)
	}
	res, err := n.executor.Execute(ctx, query)
	if err != nil {
		return fmt.Sprintf("Error executing query: %v", err)
	}
	logger.Trace("SQL RESULT", "%s", res)
	return n.FormatResult(question, res)
}

// FormatResult turns a tabular result into a sentence for the question.
// Empty results short-circuit into a not-found message before any intent
// formatting runs.
func (n *Normaliser) FormatResult(question string, res domain.TabularResult) string {
	if res.IsNoData() {
		return notFoundAnswer(question)
	}
	intent := domain.DetectIntent(question)
	logger.Debug("Question intent: %s", intent)
	return n.strategies[intent](question, res)
}

// notFoundAnswer renders the empty-result message, naming an inferred
// absent brand when the question carries one.
func notFoundAnswer(question string) string {
	if brand := domain.AbsentBrand(question); brand != "" {
		return fmt.Sprintf(msgNotFoundBrand, brand)
	}
	return msgNotFound
}

// formatQuantity answers "how many" questions with the counted value.
func (n *Normaliser) formatQuantity(question string, res domain.TabularResult) string {
	value := cleanResult(res.String())
	if num := numericField(value); num != "" {
		value = num
	}

	// A zero count for a brand the store never carried reads better as a
	// not-found message; the wider stopword list catches multi-word names.
	if value == "0" {
		if brand := domain.AbsentBrandWide(question); brand != "" {
			return fmt.Sprintf(msgNotFoundBrand, brand)
		}
	}

	if brand, ok := domain.DetectBrand(question); ok {
		if tmpl, ok := quantityTemplates[brand.Match]; ok {
			return fmt.Sprintf(tmpl, value)
		}
	}
	return fmt.Sprintf("The total quantity is %s.", value)
}

// formatColours answers colour-listing questions from the quoted values of
// the result, pluralised for one versus many colours.
func (n *Normaliser) formatColours(question string, res domain.TabularResult) string {
	colours := quotedValues(res.String())
	if len(colours) == 0 {
		// No quoted tokens to name; fall back to a bare count.
		if cleaned := cleanResult(res.String()); cleaned != "" {
			return fmt.Sprintf("There are %s different colors available.", cleaned)
		}
		return msgNoColourInfo
	}

	if brand, ok := domain.DetectBrand(question); ok {
		if len(colours) == 1 {
			return fmt.Sprintf("%s t-shirts are available in %s color.", brand.Display, colours[0])
		}
		return fmt.Sprintf("%s t-shirts are available in %d colors: %s.",
			brand.Display, len(colours), strings.Join(colours, ", "))
	}

	if len(colours) == 1 {
		return fmt.Sprintf("There is 1 color available: %s.", colours[0])
	}
	return fmt.Sprintf("There are %d colors available: %s.",
		len(colours), strings.Join(colours, ", "))
}

// formatTopBrand answers superlative brand questions by pulling the
// (name, quantity) pair out of the result.
func (n *Normaliser) formatTopBrand(_ string, res domain.TabularResult) string {
	s := res.String()
	if m := topBrandPair.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s has the most t-shirts in stock with %s units.", m[1], m[2])
	}

	// Pattern extraction failed; best effort on the cleaned fields.
	cleaned := cleanResult(s)
	fields := strings.Fields(cleaned)
	if len(fields) >= 2 {
		return fmt.Sprintf("%s has the most t-shirts in stock with %s units.", fields[0], fields[1])
	}
	return cleaned
}

// formatBrandList answers brand-listing questions from the quoted values.
func (n *Normaliser) formatBrandList(_ string, res domain.TabularResult) string {
	brands := quotedValues(res.String())
	if len(brands) == 0 {
		return "We carry multiple t-shirt brands in our inventory."
	}
	return fmt.Sprintf("We carry %d t-shirt brands: %s.", len(brands), strings.Join(brands, ", "))
}

// formatGeneric returns the cleaned scalar or string as-is.
func (n *Normaliser) formatGeneric(_ string, res domain.TabularResult) string {
	return cleanResult(res.String())
}

// cleanResult strips result punctuation and collapses the leftover
// whitespace.
func cleanResult(s string) string {
	return strings.Join(strings.Fields(resultCleaner.Replace(s)), " ")
}

// quotedValues extracts all single-quoted tokens from a stringified result.
func quotedValues(s string) []string {
	matches := quotedToken.FindAllStringSubmatch(s, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}

// numericField returns the first purely numeric field of a cleaned result
// string, or "" when none exists. Results pairing a label with a count
// ("Nike 1063") answer quantity questions with the count alone.
func numericField(cleaned string) string {
	fields := strings.Fields(cleaned)
	if len(fields) < 2 {
		return ""
	}
	for _, f := range fields {
		if isNumericValue(f) {
			return f
		}
	}
	return ""
}

// isNumericValue reports whether s reads as a plain or fixed-point number.
func isNumericValue(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for _, r := range s {
		if r == '.' && !dot {
			dot = true
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
