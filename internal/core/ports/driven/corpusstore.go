package driven

import "github.com/custodia-labs/corpuschat/internal/core/domain"

// CorpusStore persists corpora as JSON arrays.
type CorpusStore interface {
	// Save writes records to path, replacing any existing file.
	// An empty slice is written as an empty array.
	Save(path string, records []domain.Record) error

	// Load returns the raw JSON array stored at path.
	// Returns an error wrapping domain.ErrMissingCorpus if the file does not exist.
	Load(path string) ([]byte, error)
}
