package ai

import (
	"context"
)

// Provider defines the contract for the completion collaborator.
// This interface allows for swapping providers (Gemini, OpenAI, etc.)
// without touching the search flow.
type Provider interface {
	// Complete submits a prompt and returns the model's free-text reply.
	Complete(ctx context.Context, req Request) (string, error)

	// Close releases any client resources.
	Close() error
}
