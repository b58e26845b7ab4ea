package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/bijilboby/TQuery/internal/core/domain"
	"github.com/bijilboby/TQuery/internal/core/ports/driven"
	"github.com/bijilboby/TQuery/internal/core/ports/driving"
	"github.com/bijilboby/TQuery/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.AskService = (*Pipeline)(nil)

// Refusal and status messages returned without consulting the oracle.
const (
	msgOutOfDomain = `I'm sorry, but I can only answer questions related to our t-shirt inventory, pricing, or discounts.

Example questions:
- How many Nike shirts are in stock?
- What colors are available for Levi's?
- What's the revenue from selling all items with discounts?
- What sizes are available for Adidas shirts?`

	msgIncompleteBrand = `Your question "%s" seems incomplete or has grammatical errors. Please ask a complete question.

Examples of complete questions about %[2]s:
- How many %[2]s shirts do we have?
- What colors are available for %[2]s?
- What is the total price of %[2]s shirts?
- What sizes are available for %[2]s?
- How much revenue would we get from selling all %[2]s shirts?`

	msgIncomplete = `Your question "%s" seems incomplete or has grammatical errors. Please ask a complete question.

Examples of complete questions:
- How many Nike shirts do we have?
- What colors are available for Levi's?
- What is the total price of Adidas shirts?
- What sizes are available for Van Huesen?
- How much revenue would we get from selling all shirts?`

	msgMultipartHeader = "Multi-part question detected - breaking it down:\n\n"
	msgPartOffTopic    = "This part is not related to our t-shirt inventory"
	msgPartIncomplete  = "This part seems incomplete; please rephrase it as a full question"
)

// defaultPacing is one oracle call per second between multipart sub-questions,
// a courtesy wait for the external translator's rate limits.
const defaultPacing = rate.Limit(1)

// Pipeline sequences the question-understanding gates, invokes the query
// oracle per (sub-)question and drives answer normalisation. Each call is a
// single stateless pass; the pipeline holds no mutable state between calls.
type Pipeline struct {
	oracle     driven.QueryOracle
	gate       *RelevanceGate
	validator  *CompletenessValidator
	splitter   *MultipartSplitter
	normaliser *Normaliser
	limiter    *rate.Limiter
}

// NewPipeline creates the pipeline over the production rule tables.
func NewPipeline(oracle driven.QueryOracle) *Pipeline {
	return &Pipeline{
		oracle:     oracle,
		gate:       NewRelevanceGate(domain.DefaultRelevanceRules()),
		validator:  NewCompletenessValidator(domain.DefaultCompletenessRules()),
		splitter:   NewMultipartSplitter(domain.DefaultMultipartRules()),
		normaliser: NewNormaliser(oracle),
		limiter:    rate.NewLimiter(defaultPacing, 1),
	}
}

// SetPacing replaces the rate limiter pacing multipart oracle calls.
// Tests inject rate.NewLimiter(rate.Inf, 0) to run without real delay.
func (p *Pipeline) SetPacing(limiter *rate.Limiter) {
	p.limiter = limiter
}

// Ask processes one question to completion. Every failure path terminates in
// answer text; no raw fault reaches the caller.
func (p *Pipeline) Ask(ctx context.Context, question string) string {
	logger.Section("Ask Pipeline")
	logger.Trace("USER QUERY", "%s", question)

	if p.splitter.IsMultipart(question) {
		if answer, ok := p.askMultipart(ctx, question); ok {
			return answer
		}
		// Splitting yielded a single part; treat as not multipart.
	}
	return p.askSingle(ctx, question)
}

// askSingle runs the gate sequence and one oracle round-trip.
func (p *Pipeline) askSingle(ctx context.Context, question string) string {
	if !p.gate.InDomain(question) {
		logger.Info("Rejected: out of domain")
		return msgOutOfDomain
	}
	if !p.validator.IsComplete(question) {
		logger.Info("Rejected: incomplete question")
		return incompleteAnswer(question)
	}

	resp, err := p.oracle.Translate(ctx, question)
	if err != nil {
		logger.Warn("Oracle failure: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return p.normaliser.Normalise(ctx, question, resp)
}

// askMultipart decomposes the question and answers each part independently,
// localising any failure to that part's answer block. Reports ok=false when
// decomposition yields a single part.
func (p *Pipeline) askMultipart(ctx context.Context, question string) (string, bool) {
	parts := p.splitter.Split(question)
	if len(parts) <= 1 {
		return "", false
	}
	logger.Info("Multipart question: %d parts", len(parts))

	blocks := make([]string, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			// Courtesy pacing between oracle calls.
			if err := p.limiter.Wait(ctx); err != nil {
				blocks = append(blocks, partBlock(i+1, part, fmt.Sprintf("Error processing: %v", err)))
				continue
			}
		}
		blocks = append(blocks, partBlock(i+1, part, p.answerPart(ctx, part)))
	}
	return msgMultipartHeader + strings.Join(blocks, "\n\n"), true
}

// answerPart runs the single-question sub-pipeline for one decomposed part.
// Gate rejections become short inline notes rather than full refusals.
func (p *Pipeline) answerPart(ctx context.Context, part string) string {
	if !p.gate.InDomain(part) {
		return msgPartOffTopic
	}
	if !p.validator.IsComplete(part) {
		return msgPartIncomplete
	}

	resp, err := p.oracle.Translate(ctx, part)
	if err != nil {
		return fmt.Sprintf("Error processing: %v", err)
	}
	answer := p.normaliser.Normalise(ctx, part, resp)
	return reformatDiscounts(part, answer)
}

// partBlock renders one labelled answer block of a multipart answer.
func partBlock(n int, part, answer string) string {
	return fmt.Sprintf("**Question %d:** %s\n**Answer:** %s", n, capitalise(part), answer)
}

// incompleteAnswer builds the guided refusal, personalised with a known
// brand when the question mentions one.
func incompleteAnswer(question string) string {
	if brand, ok := domain.DetectBrand(question); ok {
		return fmt.Sprintf(msgIncompleteBrand, question, brand.Display)
	}
	return fmt.Sprintf(msgIncomplete, question)
}

// reformatDiscounts rewrites a bare id/percentage sequence into per-shirt
// discount lines when a part asks about discounts. Answers without digits
// pass through untouched.
func reformatDiscounts(part, answer string) string {
	if !strings.Contains(strings.ToLower(part), "discount") {
		return answer
	}
	if !strings.ContainsAny(answer, "0123456789") {
		return answer
	}
	fields := strings.Fields(answer)
	if len(fields) <= 2 {
		return answer
	}

	var lines []string
	for i := 0; i+1 < len(fields); i += 2 {
		lines = append(lines, fmt.Sprintf("T-shirt ID %s: %s%% discount", fields[i], fields[i+1]))
	}
	if len(lines) == 0 {
		return answer
	}
	return strings.Join(lines, "\n")
}

// capitalise upper-cases the first letter of a decomposed part.
func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
