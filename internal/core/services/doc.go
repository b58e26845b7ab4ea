// Package services implements the question-understanding and answer
// synthesis pipeline: the relevance gate, the completeness validator, the
// multi-part splitter, the result normaliser and the orchestrator wiring
// them to the query oracle.
package services
