package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

// Ensure GroundingService implements the interface.
var _ driving.GroundingService = (*GroundingService)(nil)

// GroundingService renders a persisted corpus into a system instruction.
type GroundingService struct {
	corpus  driven.CorpusStore
	prompts driven.PromptStore
}

// NewGroundingService creates a new grounding service.
// prompts is optional - if nil, the built-in preamble is used.
func NewGroundingService(corpus driven.CorpusStore, prompts driven.PromptStore) *GroundingService {
	return &GroundingService{corpus: corpus, prompts: prompts}
}

// Build reads the corpus at path and renders the grounding context.
// The corpus is re-indented with two spaces; key order and non-ASCII
// text are preserved.
func (s *GroundingService) Build(path string) (*domain.GroundingContext, error) {
	data, err := s.corpus.Load(path)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: %s is not a JSON array", domain.ErrInvalidCorpus, path)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCorpus, path, err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCorpus, path, err)
	}

	logger.Debug("Loaded %d records from %s", len(records), path)

	return &domain.GroundingContext{
		CorpusPath:  path,
		RecordCount: len(records),
		Instruction: s.preamble() + "\n\n" + indented.String(),
	}, nil
}

func (s *GroundingService) preamble() string {
	if s.prompts == nil {
		return domain.DefaultGroundingPreamble
	}
	p, err := s.prompts.Load(driven.PromptGrounding)
	if err != nil {
		logger.Warn("Using default grounding prompt: %v", err)
		return domain.DefaultGroundingPreamble
	}
	p = strings.TrimRight(p, " \t\r\n")
	if p == "" {
		return domain.DefaultGroundingPreamble
	}
	return p
}
