package driven

import (
	"context"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// RunStore persists ingestion run history.
type RunStore interface {
	// Save stores a run, replacing any run with the same ID.
	Save(ctx context.Context, run *domain.IngestRun) error

	// Get returns a run by ID.
	// Returns domain.ErrNotFound if no such run exists.
	Get(ctx context.Context, id string) (*domain.IngestRun, error)

	// List returns the most recent runs, newest first.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.IngestRun, error)

	// Close releases resources.
	Close() error
}
