// Package domain contains the core business types for TQuery: questions,
// oracle responses, tabular results, and the rule tables that drive the
// question-understanding pipeline. Types here have no dependencies on
// adapters or external services.
package domain
