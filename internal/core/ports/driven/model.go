package driven

import (
	"context"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// RemoteModel is a hosted language model.
//
// Implementations:
//   - google: Gemini via the generative-ai-go client
//   - openai: the chat completions HTTP API
type RemoteModel interface {
	// Complete sends an ordered message list and returns the reply.
	// Usage accounting is best-effort; a response without it is not an error.
	Complete(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error)

	// Provider returns the provider this model belongs to.
	Provider() domain.AIProvider

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the model is reachable and the credential is accepted,
	// without running inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ModelFactory creates remote models from settings.
// Credentials are injected into the factory once at startup.
type ModelFactory interface {
	// Create returns a model for the given settings.
	// Returns domain.ErrInvalidProvider for unknown providers and
	// domain.ErrMissingAPIKey when the provider has no credential.
	Create(ctx context.Context, settings domain.LLMSettings) (RemoteModel, error)

	// Validate creates a model for settings, pings it and closes it.
	Validate(ctx context.Context, settings domain.LLMSettings) error

	// Providers returns the providers this factory can create.
	Providers() []domain.AIProvider
}
