package driven

import "github.com/custodia-labs/corpuschat/internal/core/domain"

// RecordMapper transforms a raw payload into a canonical record.
// Implementations are pure: no I/O, no logging.
type RecordMapper interface {
	// Dataset returns the catalogue whose payloads this mapper understands.
	Dataset() domain.Dataset

	// Map returns the canonical record for raw.
	// A nil raw yields (nil, nil). A payload missing required fields yields
	// an error wrapping domain.ErrMalformedRecord.
	Map(raw *domain.RawRecord) (domain.Record, error)
}

// MapperRegistry selects the mapper for a dataset.
type MapperRegistry interface {
	// Register adds a mapper, replacing any mapper for the same dataset.
	Register(m RecordMapper)

	// Get returns the mapper for dataset.
	// Returns domain.ErrUnsupportedDataset if none is registered.
	Get(dataset domain.Dataset) (RecordMapper, error)
}
