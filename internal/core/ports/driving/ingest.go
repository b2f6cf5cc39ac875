package driving

import (
	"context"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// IngestRequest describes one corpus build.
type IngestRequest struct {
	// Dataset is the catalogue to ingest.
	Dataset domain.Dataset

	// Range is the closed identifier range, walked in ascending order.
	Range domain.IDRange

	// Output is the corpus file to write.
	Output string
}

// IngestResult is the outcome of a corpus build.
type IngestResult struct {
	// Records are the mapped records in ascending identifier order.
	Records []domain.Record

	// Failures holds the fetch error for each identifier that could not be retrieved.
	Failures map[int]error

	// OutputPath is the corpus file that was written.
	OutputPath string

	// Skipped lists identifiers whose payload produced no record.
	Skipped []int

	// Run is the history entry for this build.
	Run *domain.IngestRun
}

// ProgressFunc is called before each identifier is fetched.
type ProgressFunc func(id int)

// IngestService builds corpora from remote catalogues.
type IngestService interface {
	// Ingest fetches and maps every identifier in the range, then writes
	// the corpus. Per-identifier failures never abort the build.
	Ingest(ctx context.Context, req IngestRequest, progress ProgressFunc) (*IngestResult, error)

	// Runs returns recent ingestion runs, newest first.
	Runs(ctx context.Context, limit int) ([]domain.IngestRun, error)
}
