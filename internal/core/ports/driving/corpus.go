package driving

import "encoding/json"

// CorpusEntry is a record read back from a persisted corpus.
type CorpusEntry struct {
	// ID is the record identifier.
	ID int

	// Name is the record display name.
	Name string

	// Raw is the record object exactly as persisted.
	Raw json.RawMessage
}

// CorpusService reads persisted corpora.
type CorpusService interface {
	// List returns every record in the corpus at path, in file order.
	List(path string) ([]CorpusEntry, error)

	// Get returns the record with the given identifier.
	// Returns domain.ErrNotFound if no record has that identifier.
	Get(path string, id int) (*CorpusEntry, error)
}
