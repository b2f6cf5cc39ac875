package domain

import "time"

// RawRecord is the undecoded body of a single fetched entity.
// It is the fetcher's output before mapping.
type RawRecord struct {
	// Dataset names the catalogue the record came from.
	Dataset Dataset

	// ID is the numeric identifier that was requested.
	ID int

	// URI is the location the payload was fetched from.
	URI string

	// Content is the raw JSON body.
	Content []byte

	// FetchedAt is when the fetch completed.
	FetchedAt time.Time
}
