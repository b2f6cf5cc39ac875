package domain

import "time"

// IngestRun records one execution of the corpus builder.
type IngestRun struct {
	// ID is a unique identifier for the run.
	ID string

	// Dataset is the catalogue that was ingested.
	Dataset Dataset

	// Range is the identifier range requested.
	Range IDRange

	// Output is the corpus file that was written.
	Output string

	// Saved is the number of records written.
	Saved int

	// FailedIDs lists identifiers whose fetch or mapping failed.
	FailedIDs []int

	// StartedAt is when the run began.
	StartedAt time.Time

	// CompletedAt is when the corpus file was written.
	CompletedAt time.Time
}

// Duration returns how long the run took.
func (r *IngestRun) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
