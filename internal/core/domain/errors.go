package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrOutOfDomain indicates a question does not concern the inventory.
	ErrOutOfDomain = errors.New("question out of domain")

	// ErrIncompleteQuestion indicates a question is a keyword fragment or
	// grammatically malformed.
	ErrIncompleteQuestion = errors.New("incomplete question")

	// ErrOracleFailure indicates the query oracle raised or returned an
	// unusable shape.
	ErrOracleFailure = errors.New("oracle failure")

	// ErrLLMUnavailable indicates no LLM service is configured.
	// Question translation is impossible without one.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrStoreUnavailable indicates the inventory store is not configured.
	ErrStoreUnavailable = errors.New("inventory store unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
