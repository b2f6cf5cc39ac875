package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// GroundingService turns a persisted corpus into a session instruction.
type GroundingService interface {
	// Build reads the corpus at path and renders the grounding context.
	// Returns an error wrapping domain.ErrMissingCorpus when the file is absent.
	Build(path string) (*domain.GroundingContext, error)
}

// ChatService runs stateless question-answer turns against a remote model.
type ChatService interface {
	// Exchange sends one user message with the grounding context.
	Exchange(ctx context.Context, text string) (*domain.ChatResponse, error)

	// Run reads lines from in until "quit" or EOF, writing replies to out.
	// Model errors are reported to out and do not end the session.
	Run(ctx context.Context, in io.Reader, out io.Writer) error

	// Context returns the session's grounding context.
	Context() *domain.GroundingContext

	// ModelName returns the remote model in use.
	ModelName() string

	// Close releases the remote model.
	Close() error
}
