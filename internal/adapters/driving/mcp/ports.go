package mcp

import (
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat answers grounded questions.
	Chat driving.ChatService

	// Corpus reads records back from the corpus file. Optional.
	Corpus driving.CorpusService

	// CorpusPath is the corpus file the session was grounded on.
	CorpusPath string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Corpus != nil && p.CorpusPath == "" {
		return ErrMissingCorpusPath
	}
	return nil
}
