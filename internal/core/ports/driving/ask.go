// Package driving provides interfaces for inbound adapters (primary ports).
package driving

import "context"

// AskService answers natural-language questions about the inventory.
type AskService interface {
	// Ask processes one question to completion and returns the final
	// conversational answer. Every failure path terminates in answer text;
	// a raw fault never reaches the caller.
	Ask(ctx context.Context, question string) string
}
