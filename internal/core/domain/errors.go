package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedDataset indicates an unknown dataset name.
	ErrUnsupportedDataset = errors.New("unsupported dataset")

	// Ingestion Errors.

	// ErrFetchFailed indicates a record could not be retrieved from its source.
	// Ingestion skips the identifier and continues.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrMalformedRecord indicates a payload is missing required fields
	// or cannot be decoded. The mapper produces no record for it.
	ErrMalformedRecord = errors.New("malformed record")

	// Session Errors.

	// ErrMissingCorpus indicates the persisted corpus file does not exist.
	// A chat session cannot start without it.
	ErrMissingCorpus = errors.New("corpus file not found")

	// ErrInvalidCorpus indicates the corpus file is not a JSON array.
	ErrInvalidCorpus = errors.New("invalid corpus")

	// ErrInvalidProvider indicates an unrecognised model provider name.
	ErrInvalidProvider = errors.New("provider must be 'google' or 'openai'")

	// ErrMissingAPIKey indicates the selected provider has no credential configured.
	ErrMissingAPIKey = errors.New("API key not configured")
)
