package driven

import (
	"context"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// RecordFetcher retrieves single records from a remote catalogue.
// One call is made per identifier; implementations own their own
// timeout policy and never retry.
type RecordFetcher interface {
	// Dataset returns the catalogue this fetcher reads from.
	Dataset() domain.Dataset

	// Fetch returns the raw payload for id, or an error if the record
	// could not be retrieved.
	Fetch(ctx context.Context, id int) (*domain.RawRecord, error)
}

// FetcherFactory creates fetchers for datasets.
type FetcherFactory interface {
	// Create returns a fetcher for the dataset.
	// Returns domain.ErrUnsupportedDataset for unknown datasets.
	Create(dataset domain.Dataset) (RecordFetcher, error)
}
